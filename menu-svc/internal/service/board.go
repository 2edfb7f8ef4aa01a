package service

import "boum-cafe/menu-svc/internal/domain"

// BuildBoard lays out visible items for the public menu: a signature strip,
// then one section per non-empty category in band order.
func BuildBoard(bands Bands, items []domain.MenuItem) *domain.Board {
	board := &domain.Board{
		Signature: []domain.MenuItem{},
		Sections:  []domain.BoardSection{},
	}

	var visible []domain.MenuItem
	for _, item := range items {
		if item.IsVisible {
			visible = append(visible, item)
		}
	}

	for _, c := range bands.Categories {
		section := SortedInCategory(c, visible)
		if len(section) == 0 {
			continue
		}
		for _, item := range section {
			if item.IsSignature {
				board.Signature = append(board.Signature, item)
			}
		}
		board.Sections = append(board.Sections, domain.BoardSection{Category: c, Items: section})
	}
	return board
}
