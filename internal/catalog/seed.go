package catalog

import "github.com/handiism/groover/internal/model"

// seedItems is the built-in catalog. The first six entries are owned and
// form the starting library.
var seedItems = []model.Item{
	{ID: 1, Title: "Dark Side of the Moon", Artist: "Pink Floyd", Year: 1973, Kind: model.KindVinyl, Genre: "Progressive Rock", Owned: true, CoverColor: "#1a1a2e"},
	{ID: 2, Title: "Thriller", Artist: "Michael Jackson", Year: 1982, Kind: model.KindVinyl, Genre: "Pop", Owned: true, CoverColor: "#8b0000"},
	{ID: 3, Title: "Kind of Blue", Artist: "Miles Davis", Year: 1959, Kind: model.KindVinyl, Genre: "Jazz", Owned: true, CoverColor: "#000080"},
	{ID: 4, Title: "OK Computer", Artist: "Radiohead", Year: 1997, Kind: model.KindCD, Genre: "Alternative Rock", Owned: true, CoverColor: "#2d2d2d"},
	{ID: 5, Title: "Abbey Road", Artist: "The Beatles", Year: 1969, Kind: model.KindVinyl, Genre: "Rock", Owned: true, CoverColor: "#ffffff"},
	{ID: 6, Title: "Nevermind", Artist: "Nirvana", Year: 1991, Kind: model.KindCD, Genre: "Grunge", Owned: true, CoverColor: "#87ceeb"},
	{ID: 7, Title: "Bohemian Rhapsody", Artist: "Queen", Year: 1975, Kind: model.KindVinyl, Genre: "Rock", CoverColor: "#ffd700"},
	{ID: 8, Title: "Hotel California", Artist: "Eagles", Year: 1976, Kind: model.KindVinyl, Genre: "Rock", CoverColor: "#8b4513"},
	{ID: 9, Title: "Back in Black", Artist: "AC/DC", Year: 1980, Kind: model.KindVinyl, Genre: "Hard Rock", CoverColor: "#000000"},
	{ID: 10, Title: "The Wall", Artist: "Pink Floyd", Year: 1979, Kind: model.KindCD, Genre: "Progressive Rock", CoverColor: "#ff6b6b"},
}

// Default returns a catalog built from the seed data.
func Default() *Catalog {
	c, err := New(seedItems)
	if err != nil {
		panic("catalog: invalid seed data: " + err.Error())
	}
	return c
}
