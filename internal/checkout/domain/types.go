package domain

type Money struct {
	Currency string
	Amount   int64
}

type QuoteLine struct {
	ProductID int64
	Name      string
	Quantity  int64
	UnitPrice Money
	LineTotal Money
}

// Contact is how the buyer completes the purchase: the shop takes orders by
// phone, there is no payment gateway.
type Contact struct {
	ShopName string
	Phone    string
	Hours    string
}

type Quote struct {
	Lines   []QuoteLine
	Total   Money
	Contact Contact
	Message string
}
