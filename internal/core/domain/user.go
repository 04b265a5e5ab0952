package domain

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User is the aggregate document held by the remote store. Cart, wishlist,
// and order history are embedded lists on the document itself.
type User struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Email        string       `json:"email"`
	PasswordHash string       `json:"-"`
	Role         string       `json:"role"`
	IsBlocked    bool         `json:"isBlocked"`
	Cart         []CartLine   `json:"cart"`
	Wishlist     []ProductRef `json:"wishlist"`
	Orders       []Order      `json:"orders"`
}

// CartLine is one entry in a user's cart. A cart holds at most one line per
// product; duplicates are folded into the quantity, which never drops below 1.
type CartLine struct {
	ProductID string `json:"productId"`
	Name      string `json:"name"`
	Price     Amount `json:"price"`
	Img       string `json:"img"`
	Quantity  int    `json:"quantity"`
}

// Subtotal is the line's price times its quantity.
func (l CartLine) Subtotal() Amount {
	return Amount(float64(l.Price) * float64(l.Quantity))
}

// ProductRef is a denormalized snapshot of a product taken when it was added
// to the wishlist. It does not track later catalog changes.
type ProductRef struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Price Amount `json:"price"`
	Img   string `json:"img"`
}

// CloneCart returns an independent copy of the given cart lines. The copy is
// non-nil even for empty input so persisted documents keep a list-valued
// field rather than null.
func CloneCart(lines []CartLine) []CartLine {
	out := make([]CartLine, len(lines))
	copy(out, lines)
	return out
}

// CartCount is the total number of items across all lines.
func CartCount(lines []CartLine) int {
	n := 0
	for _, l := range lines {
		n += l.Quantity
	}
	return n
}

// CartTotal sums price times quantity over all lines, rounded to two decimals.
func CartTotal(lines []CartLine) Amount {
	var sum float64
	for _, l := range lines {
		sum += float64(l.Subtotal())
	}
	return Amount(sum).Round2()
}
