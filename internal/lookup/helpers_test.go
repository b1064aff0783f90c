package lookup

import "seekbox/internal/catalog"

func fruit() []catalog.Item {
	return []catalog.Item{
		{ID: "apple", Name: "Apple", Description: "A crisp red fruit"},
		{ID: "apricot", Name: "Apricot", Description: "A small orange stone fruit"},
		{ID: "banana", Name: "Banana", Description: "A long yellow fruit"},
	}
}

func vegetables() []catalog.Item {
	return []catalog.Item{
		{ID: "artichoke", Name: "Artichoke"},
		{ID: "apple", Name: "Apple (again)"},
		{ID: "asparagus", Name: "Asparagus"},
	}
}
