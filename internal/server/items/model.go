package items

import "time"

const (
	CategorySchool   = "school"
	CategoryApparel  = "apparel"
	CategoryLiving   = "living"
	CategoryServices = "services"
	CategoryTickets  = "tickets"
)

// Categories lists the accepted categories in display order.
var Categories = []string{CategorySchool, CategoryApparel, CategoryLiving, CategoryServices, CategoryTickets}

// CategoryImages is the stock picture used for an item created without one.
var CategoryImages = map[string]string{
	CategorySchool:   "https://images.unsplash.com/photo-1456513080510-7bf3a84b82f8?w=400",
	CategoryApparel:  "https://images.unsplash.com/photo-1521572163474-6864f9cf17ab?w=400",
	CategoryLiving:   "https://images.unsplash.com/photo-1555041469-a586c61ea9bc?w=400",
	CategoryServices: "https://images.unsplash.com/photo-1556761175-4b46a572b786?w=400",
	CategoryTickets:  "https://images.unsplash.com/photo-1594608661623-aa0bd8a69762?w=400",
}

type Item struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Category    string    `json:"category"`
	Image       string    `json:"image"`
	IsActive    bool      `json:"is_active"`
	SellerID    int64     `json:"seller_id"`
	SellerEmail string    `json:"seller_email"`
	CreatedAt   time.Time `json:"created_at"`
}
