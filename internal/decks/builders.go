package decks

import "github.com/go-while/go-grantdecks/internal/models"

const audience = "Prepared for: Mass General Brigham NeuroAI Center Interview"

func slide(title string, blocks ...models.Block) models.Slide {
	return models.Slide{Title: title, Blocks: blocks}
}

// twoColumns lays sections out side by side
func twoColumns(sections ...models.Block) models.Block {
	return models.Block{Kind: models.BlockColumns, Columns: 2, Sections: sections}
}

// stacked lays sections out in a single column
func stacked(sections ...models.Block) models.Block {
	return models.Block{Kind: models.BlockColumns, Columns: 1, Sections: sections}
}

func section(heading string, items ...string) models.Block {
	bullets := make([]models.Bullet, 0, len(items))
	for _, item := range items {
		bullets = append(bullets, models.Bullet{Text: item})
	}
	return models.Block{Kind: models.BlockBullets, Heading: heading, Bullets: bullets}
}

func bullets(heading string, items ...models.Bullet) models.Block {
	return models.Block{Kind: models.BlockBullets, Heading: heading, Bullets: items}
}

func lead(phrase, text string) models.Bullet {
	return models.Bullet{Lead: phrase, Text: text}
}

func timeline(heading, labelWidth, rowGap string, entries ...models.TimelineEntry) models.Block {
	return models.Block{Kind: models.BlockTimeline, Heading: heading, LabelWidth: labelWidth, RowGap: rowGap, Entries: entries}
}

func at(when, what string) models.TimelineEntry {
	return models.TimelineEntry{When: when, What: what}
}

func text(s string) models.Block {
	return models.Block{Kind: models.BlockText, Text: s}
}

func quote(s string) models.Block {
	return models.Block{Kind: models.BlockText, Text: s, Quote: true}
}
