package service

// nationalHoliday is one entry of the curated holiday calendar.
type nationalHoliday struct {
	Month int
	Day   int
	Name  string
}

// nationalHolidays is the curated year-by-year national holiday table used
// by bulk registration. Dates such as the equinox days shift between years,
// so the table is maintained per year rather than derived from a formula.
// Observed (substitute) holidays are included explicitly.
var nationalHolidays = map[int][]nationalHoliday{
	2024: {
		{1, 1, "New Year's Day"},
		{1, 8, "Coming of Age Day"},
		{2, 11, "National Foundation Day"},
		{2, 12, "National Foundation Day (observed)"},
		{2, 23, "Emperor's Birthday"},
		{3, 20, "Vernal Equinox Day"},
		{4, 29, "Showa Day"},
		{5, 3, "Constitution Memorial Day"},
		{5, 4, "Greenery Day"},
		{5, 5, "Children's Day"},
		{5, 6, "Children's Day (observed)"},
		{7, 15, "Marine Day"},
		{8, 11, "Mountain Day"},
		{8, 12, "Mountain Day (observed)"},
		{9, 16, "Respect for the Aged Day"},
		{9, 22, "Autumnal Equinox Day"},
		{9, 23, "Autumnal Equinox Day (observed)"},
		{10, 14, "Sports Day"},
		{11, 3, "Culture Day"},
		{11, 4, "Culture Day (observed)"},
		{11, 23, "Labor Thanksgiving Day"},
	},
	2025: {
		{1, 1, "New Year's Day"},
		{1, 13, "Coming of Age Day"},
		{2, 11, "National Foundation Day"},
		{2, 23, "Emperor's Birthday"},
		{2, 24, "Emperor's Birthday (observed)"},
		{3, 20, "Vernal Equinox Day"},
		{4, 29, "Showa Day"},
		{5, 3, "Constitution Memorial Day"},
		{5, 4, "Greenery Day"},
		{5, 5, "Children's Day"},
		{5, 6, "Greenery Day (observed)"},
		{7, 21, "Marine Day"},
		{8, 11, "Mountain Day"},
		{9, 15, "Respect for the Aged Day"},
		{9, 23, "Autumnal Equinox Day"},
		{10, 13, "Sports Day"},
		{11, 3, "Culture Day"},
		{11, 23, "Labor Thanksgiving Day"},
		{11, 24, "Labor Thanksgiving Day (observed)"},
	},
	2026: {
		{1, 1, "New Year's Day"},
		{1, 12, "Coming of Age Day"},
		{2, 11, "National Foundation Day"},
		{2, 23, "Emperor's Birthday"},
		{3, 20, "Vernal Equinox Day"},
		{4, 29, "Showa Day"},
		{5, 3, "Constitution Memorial Day"},
		{5, 4, "Greenery Day"},
		{5, 5, "Children's Day"},
		{5, 6, "Constitution Memorial Day (observed)"},
		{7, 20, "Marine Day"},
		{8, 11, "Mountain Day"},
		{9, 21, "Respect for the Aged Day"},
		{9, 22, "National Holiday"},
		{9, 23, "Autumnal Equinox Day"},
		{10, 12, "Sports Day"},
		{11, 3, "Culture Day"},
		{11, 23, "Labor Thanksgiving Day"},
	},
}
