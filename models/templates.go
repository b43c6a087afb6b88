package models

// Business templates selectable in the setup wizard. Each seeds a set
// of default menu categories.
type Template struct {
	ID                string
	Name              string
	DefaultCategories []string
}

var Templates = []Template{
	{ID: "cafe", Name: "Kafe", DefaultCategories: []string{"Sıcak İçecekler", "Soğuk İçecekler", "Tatlılar", "Atıştırmalıklar"}},
	{ID: "restaurant", Name: "Restoran", DefaultCategories: []string{"Çorbalar", "Salatalar", "Ana Yemekler", "Tatlılar", "İçecekler"}},
	{ID: "bar", Name: "Bar", DefaultCategories: []string{"Kokteyller", "Biralar", "Şaraplar", "Bar Menüsü"}},
	{ID: "bakery", Name: "Pastane / Fırın", DefaultCategories: []string{"Pastalar", "Börekler", "Ekmekler", "Kurabiyeler", "İçecekler"}},
	{ID: "fastfood", Name: "Fast Food", DefaultCategories: []string{"Burgerler", "Pizzalar", "Dönerler", "Yan Ürünler", "İçecekler"}},
	{ID: "pub", Name: "Pub / Meyhane", DefaultCategories: []string{"Mezeler", "Sıcak Mezeler", "Ana Yemekler", "Biralar", "Rakılar", "Şaraplar"}},
}

func FindTemplate(id string) *Template {
	for i := range Templates {
		if Templates[i].ID == id {
			return &Templates[i]
		}
	}
	return nil
}
