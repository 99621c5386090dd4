package main

import (
	"fmt"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rvingwithbikes/campground-cli/internal/enrich"
	"github.com/rvingwithbikes/campground-cli/internal/extract"
	"github.com/rvingwithbikes/campground-cli/internal/model"
	"github.com/rvingwithbikes/campground-cli/internal/pdfdoc"
	"github.com/rvingwithbikes/campground-cli/internal/render"
	"github.com/rvingwithbikes/campground-cli/internal/store"
	"github.com/rvingwithbikes/campground-cli/pkg/places"
)

var (
	extractPage     int
	extractEntry    int
	extractPart     int
	extractList     bool
	extractSave     bool
	extractNoCoords bool
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract one campground entry from a guidebook page",
	Long:  "Extracts a single entry from the given PDF page for verification, optionally looks up coordinates, and saves the record on request.",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		hookup := model.HookupFull
		switch extractPart {
		case 1:
			// Part 1 covers full-hookup campgrounds.
		case 2:
			hookup = model.HookupPartial
		default:
			return eris.Errorf("--part must be 1 or 2, got %d", extractPart)
		}

		page, err := pdfdoc.ReadPage(cfg.PDF.Path, extractPage)
		if err != nil {
			return eris.Wrapf(err, "read page %d", extractPage)
		}

		if extractList {
			blocks := extract.SegmentPage(page.Text)
			fmt.Printf("\nEntries on page %d:\n\n", extractPage)
			for i, s := range extract.Summarize(blocks) {
				fmt.Printf("  [%d] %s - %s\n", i, s.Heading, s.Campground)
			}
			fmt.Println("\nUse --entry N to extract a specific entry")
			return nil
		}

		zap.L().Info("extracting entry",
			zap.Int("page", extractPage),
			zap.Int("entry", extractEntry),
			zap.String("hookup_type", string(hookup)),
		)

		entry, err := extract.Entry(page, extractEntry)
		if err != nil {
			return err
		}
		entry.HookupType = hookup

		var coords *model.Coordinates
		if !extractNoCoords && entry.CampgroundName() != "" {
			fmt.Println("Looking up coordinates from Google Places API...")
			client := places.NewClient(cfg.Places.Key, places.WithBaseURL(cfg.Places.BaseURL))
			result := enrich.Coordinates(ctx, client, entry.CampgroundName(), entry.City, entry.State)
			coords = &result
		}

		fmt.Print(render.Entry(entry, coords))

		if !extractSave {
			fmt.Println("\nTo save this entry, rerun with --save:")
			fmt.Printf("  campground-cli extract --page %d --entry %d --save\n", extractPage, extractEntry)
			return nil
		}

		st := store.New(cfg.Store.Path)
		db, replaced, err := st.SaveEntry(store.BuildRecord(entry, coords))
		if err != nil {
			return err
		}
		if replaced {
			fmt.Println("Entry already existed; updated in place.")
		}
		fmt.Printf("Saved to %s (total entries: %d)\n", st.Path(), len(db.Entries))
		return nil
	},
}

func init() {
	extractCmd.Flags().IntVar(&extractPage, "page", 17, "PDF page number to extract from (1-indexed)")
	extractCmd.Flags().IntVar(&extractEntry, "entry", 0, "entry index on the page (0-indexed)")
	extractCmd.Flags().IntVar(&extractPart, "part", 1, "guidebook part: 1 (full hookups) or 2 (partial)")
	extractCmd.Flags().BoolVar(&extractList, "list", false, "list all entries on the page and exit")
	extractCmd.Flags().BoolVar(&extractSave, "save", false, "save the entry to the database after display")
	extractCmd.Flags().BoolVar(&extractNoCoords, "no-coords", false, "skip the Google Places lookup")
	rootCmd.AddCommand(extractCmd)
}
