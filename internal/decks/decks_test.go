package decks

import (
	"errors"
	"testing"

	"github.com/go-while/go-grantdecks/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlideCounts(t *testing.T) {
	testCases := []struct {
		build    func() *models.Deck
		slug     string
		heading  string
		expected int
	}{
		{K99R00, "k99r00", "NIH BRAIN Initiative K99/R00", 6},
		{NSFCareer, "nsf-career", "NSF CAREER Award", 8},
		{McKnightScholars, "mcknight-scholars", "McKnight Scholars Award", 8},
	}
	for _, tc := range testCases {
		t.Run(tc.slug, func(t *testing.T) {
			deck := tc.build()
			assert.Equal(t, tc.slug, deck.Slug)
			assert.Equal(t, tc.heading, deck.Title.Heading)
			assert.Equal(t, tc.expected, deck.SlideCount())
		})
	}
}

func TestSlideOrder(t *testing.T) {
	titles := func(d *models.Deck) []string {
		var out []string
		for _, s := range d.Slides {
			out = append(out, s.Title)
		}
		return out
	}

	assert.Equal(t, []string{
		"Overview & Purpose",
		"Eligibility & Requirements",
		"Alignment with NeuroAI Center",
		"Timeline & Strategy",
		"Expected Outcomes",
	}, titles(K99R00()))

	assert.Equal(t, []string{
		"Program Overview",
		"Eligibility & Requirements",
		"Proposed Research Plan",
		"Integrated Education Plan",
		"Alignment with NeuroAI Center",
		"Timeline & Implementation",
		"Expected Outcomes & Impact",
	}, titles(NSFCareer()))

	assert.Equal(t, []string{
		"Award Overview",
		"Eligibility & Timeline",
		"Proposed Research",
		"Research Specific Aims",
		"Alignment with NeuroAI Center",
		"Expected Outcomes & Impact",
		"McKnight Scholar Community",
	}, titles(McKnightScholars()))
}

func TestBuildReturnsFreshValues(t *testing.T) {
	first := NSFCareer()
	first.Slides[0].Title = "mutated"
	first.Slides[0].Blocks[0].Sections[0].Bullets[0].Text = "mutated"

	second := NSFCareer()
	assert.Equal(t, "Program Overview", second.Slides[0].Title)
	assert.Equal(t, "NSF's most prestigious award for early-career faculty",
		second.Slides[0].Blocks[0].Sections[0].Bullets[0].Text)
}

func TestBlocksAreWellFormed(t *testing.T) {
	var check func(t *testing.T, b models.Block, nested bool)
	check = func(t *testing.T, b models.Block, nested bool) {
		switch b.Kind {
		case models.BlockColumns:
			assert.False(t, nested, "columns do not nest")
			assert.Contains(t, []int{1, 2}, b.Columns)
			assert.NotEmpty(t, b.Sections)
			for _, s := range b.Sections {
				check(t, s, true)
			}
		case models.BlockBullets:
			assert.NotEmpty(t, b.Bullets)
			for _, bl := range b.Bullets {
				assert.NotEmpty(t, bl.Text)
			}
		case models.BlockTimeline:
			assert.NotEmpty(t, b.Entries)
			assert.NotEmpty(t, b.LabelWidth)
			assert.NotEmpty(t, b.RowGap)
		case models.BlockText:
			assert.NotEmpty(t, b.Text)
		default:
			t.Errorf("unexpected block kind %q", b.Kind)
		}
	}
	for _, deck := range All() {
		for _, s := range deck.Slides {
			require.NotEmpty(t, s.Blocks, "%s / %s", deck.Slug, s.Title)
			for _, b := range s.Blocks {
				check(t, b, false)
			}
		}
	}
}

func TestLookup(t *testing.T) {
	deck, err := Lookup("mcknight-scholars")
	require.NoError(t, err)
	assert.Equal(t, "McKnight Scholars Award", deck.Title.Heading)

	_, err = Lookup("foo")
	assert.True(t, errors.Is(err, ErrUnknownDeck))
}

func TestRoutesAndSummaries(t *testing.T) {
	var paths []string
	for _, r := range Routes() {
		paths = append(paths, r.Path())
	}
	assert.Equal(t, []string{"/k99r00", "/nsf-career", "/mcknight-scholars"}, paths)

	summaries := Summaries()
	require.Len(t, summaries, 3)
	assert.Equal(t, models.DeckSummary{
		Slug:       "nsf-career",
		Name:       "NSF CAREER",
		Title:      "NSF CAREER Award",
		Path:       "/nsf-career",
		SlideCount: 8,
	}, summaries[1])
}
