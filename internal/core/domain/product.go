package domain

// Product is a catalog entity. The admin panel is its only mutator.
type Product struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       Amount `json:"price"`
	Stock       int    `json:"stock"`
	Category    string `json:"category"`
	Img         string `json:"img"`
}

// Ref snapshots the product for wishlist storage.
func (p Product) Ref() ProductRef {
	return ProductRef{ID: p.ID, Name: p.Name, Price: p.Price, Img: p.Img}
}
