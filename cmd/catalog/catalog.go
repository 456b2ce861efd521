package catalog

import (
	"fmt"
	"io"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ringkit/ringkit/internal/config"
	"github.com/ringkit/ringkit/lib/catalog"
	"github.com/ringkit/ringkit/lib/logctx"
)

const (
	FlagFile        = "file"
	FlagShorterThan = "shorter-than"
	FlagArtist      = "artist"
	FlagSave        = "save"

	KeyFile        = "catalog.file"
	KeyShorterThan = "catalog.shorter-than"
	KeyArtist      = "catalog.artist"
	KeySave        = "catalog.save"
)

type filter struct {
	shorterThan int
	artist      string
}

func (f filter) apply(c *catalog.Catalog) []catalog.Track {
	tracks := c.Tracks()
	if f.shorterThan > 0 {
		tracks = catalog.New(tracks...).ShorterThan(f.shorterThan)
	}
	if f.artist != "" {
		tracks = catalog.New(tracks...).ByArtist(f.artist)
	}
	return tracks
}

func (f filter) title() string {
	switch {
	case f.shorterThan > 0 && f.artist != "":
		return fmt.Sprintf("Tracks by %s shorter than %d minutes:", f.artist, f.shorterThan)
	case f.shorterThan > 0:
		return fmt.Sprintf("Tracks shorter than %d minutes:", f.shorterThan)
	case f.artist != "":
		return fmt.Sprintf("Tracks by %s:", f.artist)
	default:
		return "All tracks:"
	}
}

func printTracks(w io.Writer, title string, tracks []catalog.Track) {
	fmt.Fprintln(w, title)
	if len(tracks) == 0 {
		fmt.Fprintln(w, "no matching tracks")
		return
	}
	for i, t := range tracks {
		fmt.Fprintf(w, "%d. %s\n", i+1, t)
	}
}

func CreateCatalogCmd() *cobra.Command {
	catalogCmd := &cobra.Command{
		Use:   "catalog",
		Short: "List and filter a music catalog",
		Long: `List the tracks of a music catalog, optionally filtered by maximum
length and artist. Without --file the built-in sample catalog is used.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := config.NewLogger(cmd.ErrOrStderr())
			ctx := logctx.WithLogger(cmd.Context(), logger)
			fs := afero.NewOsFs()

			c := catalog.New(catalog.SampleTracks()...)
			if filename := viper.GetString(KeyFile); filename != "" {
				loaded, err := catalog.Load(fs, filename)
				if err != nil {
					return err
				}
				c = loaded
				logctx.From(ctx).Debug("Loaded catalog", "file", filename, "tracks", c.Len())
			}

			f := filter{
				shorterThan: viper.GetInt(KeyShorterThan),
				artist:      viper.GetString(KeyArtist),
			}
			printTracks(cmd.OutOrStdout(), f.title(), f.apply(c))

			if filename := viper.GetString(KeySave); filename != "" {
				if err := c.Save(fs, filename); err != nil {
					return err
				}
				logctx.From(ctx).Info("Saved catalog", "file", filename, "tracks", c.Len())
			}
			return nil
		},
	}

	catalogCmd.Flags().StringP(FlagFile, "f", "", "XML catalog to read instead of the sample tracks")
	catalogCmd.Flags().IntP(FlagShorterThan, "s", 0, "Only list tracks shorter than this many minutes (0 disables)")
	catalogCmd.Flags().StringP(FlagArtist, "a", "", "Only list tracks by this artist, ignoring case")
	catalogCmd.Flags().String(FlagSave, "", "Write the full catalog to this XML file")
	config.BindFlag(catalogCmd, KeyFile, FlagFile)
	config.BindFlag(catalogCmd, KeyShorterThan, FlagShorterThan)
	config.BindFlag(catalogCmd, KeyArtist, FlagArtist)
	config.BindFlag(catalogCmd, KeySave, FlagSave)

	return catalogCmd
}
