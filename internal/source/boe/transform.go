package boe

import "boe_gateway/internal/domain"

func toLegislation(d legislationDoc) domain.Legislation {
	return domain.Legislation{
		ID:         d.ID,
		Title:      d.Title,
		Date:       d.Date,
		URL:        d.URL,
		NormType:   d.NormType,
		Number:     d.Number,
		Department: d.Department,
		Range:      d.Range,
		IsActive:   d.IsActive,
		Text:       d.Text,
		Structure:  toStructure(d.Structure),
	}
}

func toStructure(d *structureDoc) *domain.Structure {
	if d == nil {
		return nil
	}

	s := &domain.Structure{
		Titles:   make([]domain.Heading, 0, len(d.Titles)),
		Chapters: make([]domain.Heading, 0, len(d.Chapters)),
		Articles: make([]domain.Article, 0, len(d.Articles)),
	}
	for _, t := range d.Titles {
		s.Titles = append(s.Titles, domain.Heading{Number: t.Number, Title: t.Title})
	}
	for _, ch := range d.Chapters {
		s.Chapters = append(s.Chapters, domain.Heading{Number: ch.Number, Title: ch.Title})
	}
	for _, a := range d.Articles {
		s.Articles = append(s.Articles, domain.Article{
			Number:  a.Number,
			Title:   a.Title,
			Content: a.Content,
		})
	}
	return s
}

func toSummaryItem(d summaryDoc) domain.SummaryItem {
	return domain.SummaryItem{
		ID:           d.ID,
		Title:        d.Title,
		Date:         d.Date,
		URL:          d.URL,
		Section:      d.Section,
		Issuer:       d.Issuer,
		Pages:        d.Pages,
		DocumentType: d.DocumentType,
	}
}

func toAuxiliaryItem(d auxiliaryDoc) domain.AuxiliaryItem {
	return domain.AuxiliaryItem{
		Code:        d.Code,
		Description: d.Description,
		Type:        d.Type,
	}
}
