// Millesime - Wine Vintage Quality and Gift Recommendation Service
// Copyright 2026 M. Vachon (mvachon)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mvachon/millesime

package recommend

import (
	"strings"

	"github.com/mvachon/millesime/internal/models"
)

// NoteKey addresses one curated vintage note.
type NoteKey struct {
	RegionKey string
	Year      int
}

// Notes is a curated table of hand-written long-form vintage notes.
// When a (region, year) pair has an entry it replaces the synthesized
// score-band detail entirely.
type Notes map[NoteKey]string

// CuratedNotes returns the built-in note table for landmark vintages.
func CuratedNotes() Notes {
	return Notes{
		{"bordeaux_red", 1982}: "A transformative year that put Bordeaux on the modern map. Deep, concentrated, opulent fruit with 40+ years of aging potential. Most bottles are now at glorious peak, showing truffle, tobacco, and dried roses over a backbone of sweet cassis.",
		{"bordeaux_red", 1990}: "Generous, sun-kissed, and immediately charming from release. The Right Bank excelled with plush Merlot. Now mature, showing leather, cedar, and fig compote. Drink soon for maximum pleasure.",
		{"bordeaux_red", 2000}: "The Millennium vintage. A perfect growing season produced wines of extraordinary structure and depth. Still drinking beautifully, especially Saint-Emilion and Pomerol, with decades of life ahead.",
		{"bordeaux_red", 2005}: "Powerful, tannic, and built for the long haul. A hot summer concentrated everything. The best Cabernet-dominant Left Bank wines are just entering their prime, with blackcurrant, graphite, and violets.",
		{"bordeaux_red", 2009}: "Hedonistic and generous. Warm conditions produced rich, low-acid wines that seduced early but are aging gracefully. Expect dark chocolate, ripe plum, and warm spice.",
		{"bordeaux_red", 2010}: "The intellectual counterpart to 2009. Cooler finish brought acid and structure. Extraordinary aging potential. Still youthful, with intense cassis, iron, and fresh herbs.",
		{"bordeaux_red", 2015}: "A return-to-form vintage after a tricky decade. Balanced, elegant, and approachable young. Silky tannins, red and black fruit in harmony, with floral lift.",
		{"bordeaux_red", 2016}: "Widely hailed as the vintage of the decade. A dry, warm summer followed by perfectly timed September rain. Classic structure with modern polish. Cabernet Sauvignon excelled.",
		{"burgundy_red", 1990}: "A hot, early harvest produced deeply colored Pinot Noir of unusual richness. The best are now at peak, showing wild strawberry, forest floor, and a haunting smoky finish.",
		{"burgundy_red", 2005}: "A great year across all appellations. Balanced acidity and ripe fruit. The Cote de Nuits produced wines of crystalline purity. Now entering their prime drinking window.",
		{"burgundy_red", 2010}: "Widely considered one of Burgundy's greatest modern vintages. Pinot Noir of rare elegance, with pure red fruit, mineral tension, and laser-focused acidity wrapped in silky tannins.",
		{"burgundy_red", 2015}: "A warm vintage that produced generous, fruit-forward Burgundy. More accessible than 2010 but with real depth. Drink now through 2035 for the top crus.",
		{"napa_valley", 2013}:  "The year Napa delivered near-perfect conditions. A long, even growing season produced concentrated but balanced Cabernet Sauvignon. Drinking perfectly now, with blackberry, mocha, and sage.",
		{"napa_valley", 2016}:  "Another benchmark Napa vintage. Moderate temperatures preserved freshness while building intensity. Look for cassis, graphite, and dried herb notes.",
		{"napa_valley", 2019}:  "A cooler vintage by Napa standards that produced wines of remarkable finesse. Lower alcohol, bright acidity, and complex aromatics. One for the cellar.",
		{"tuscany", 1997}:      "Tuscany's sun-drenched masterpiece. Brunello di Montalcino from this year remains one of Italy's greatest modern wines, with dried cherry, leather, and balsamic depth.",
		{"tuscany", 2010}:      "A classic cool-vintage Sangiovese. Bright acidity, fine tannins, and aromatic complexity. Brunello and Chianti Classico Riserva are drinking superbly now.",
		{"champagne", 2008}:    "A champagne vintage that changed the conversation. Razor-sharp acidity, extraordinary minerality, and tiny, persistent bubbles. The wine world still talks about it.",
		{"champagne", 2002}:    "One of the great Champagne vintages. Rich and toasty, with brioche, hazelnut, and citrus zest. Prestige cuvees from this year are legendary.",
		{"piedmont", 1990}:     "A legendary Barolo vintage. Hot, dry conditions produced powerful, concentrated Nebbiolo with exceptional aging potential. Now showing tar, roses, dried herbs, and sweet spice.",
		{"piedmont", 2010}:     "One of the finest modern Barolo vintages. A cool growing season produced wines of remarkable elegance and transparency. Pure red cherry, rose petal, and mineral intensity.",
		{"rhone_north", 2010}:  "A stunning year for Syrah. Cool conditions preserved acidity while delivering deep color and intense aromatics. Hermitage and Cote-Rotie produced wines for the ages.",
		{"rhone_south", 2007}:  "A benchmark year for Chateauneuf-du-Pape. Warm but not excessive, producing rich Grenache-based blends with garrigue, dark fruit, and spice.",
		{"rioja", 2001}:        "One of the great modern Rioja vintages. Traditional producers made wines of exceptional balance. Now showing dried cherry, vanilla, tobacco, and coconut from American oak aging.",
		{"mosel", 2019}:        "An outstanding Riesling vintage. Perfect balance of ripeness and acidity. Both dry and sweet styles excelled, with peach, slate, and petrol-tinged minerality.",
	}
}

var drinkingWindowClauses = map[string]string{
	models.WindowYoung:    "Still youthful with primary fruit character.",
	models.WindowAtPeak:   "Now at its peak drinking window.",
	models.WindowMature:   "Fully mature, showing developed secondary aromas.",
	models.WindowPastPeak: "Past its prime, though well-stored bottles may still show character.",
	models.WindowCellar:   "Still needs time in the cellar to reach its potential.",
}

// BuildDetail returns the long-form detail sentence for a candidate.
// Curated notes win outright; otherwise the detail is synthesized
// from the score band plus a drinking-window clause. An unknown
// drinking window contributes an empty clause.
func BuildDetail(notes Notes, candidate models.RegionVintage, year int) string {
	if note, ok := notes[NoteKey{RegionKey: candidate.RegionKey, Year: year}]; ok {
		return note
	}

	region := candidate.DisplayName
	clause := drinkingWindowClauses[candidate.DrinkingWindow]

	var b strings.Builder
	switch {
	case candidate.Score >= 95:
		b.WriteString("An exceptional year for " + region + ". The conditions aligned to produce wines of rare concentration and complexity.")
	case candidate.Score >= 90:
		b.WriteString("A standout vintage for " + region + ", with wines showing depth, balance, and aging potential.")
	case candidate.Score >= 85:
		b.WriteString("A very good year in " + region + ". Well-made wines with character and regional typicity.")
	case candidate.Score >= 80:
		b.WriteString("A solid vintage for " + region + ". The wines show clean fruit and honest expression, if not the intensity of the best years.")
	case candidate.Score >= 75:
		b.WriteString("A mixed vintage in " + region + ". Careful producers still made appealing wines, though selection matters.")
	default:
		b.WriteString("A challenging year in " + region + ". Difficult growing conditions tested even the best producers, though some managed to craft wines of surprising quality.")
	}
	b.WriteByte(' ')
	b.WriteString(clause)
	return b.String()
}
