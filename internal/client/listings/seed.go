package listings

import "github.com/dmitrijs2005/gatormarket/internal/client/models"

// Seed returns the catalog a fresh store starts with.
func Seed() []models.Listing {
	return []models.Listing{
		{ID: 1, Title: "Calculus Textbook", Price: 45, Category: models.CategorySchool, Seller: "student1@ufl.edu",
			Image: "https://placehold.co/400x300/00306e/ffb362?text=Textbook", Description: "Early Transcendentals, 8th edition. Light highlighting."},
		{ID: 2, Title: "Mini Fridge", Price: 80, Category: models.CategoryLiving, Seller: "student2@ufl.edu",
			Image: "https://placehold.co/400x300/00306e/ffb362?text=Mini+Fridge", Description: "3.1 cu ft, fits under a dorm desk."},
		{ID: 3, Title: "Desk Lamp", Price: 15, Category: models.CategoryLiving, Seller: "student3@ufl.edu",
			Image: "https://placehold.co/400x300/00306e/ffb362?text=Desk+Lamp"},
		{ID: 4, Title: "Gators Hoodie", Price: 30, Category: models.CategoryApparel, Seller: "student1@ufl.edu",
			Image: "https://images.unsplash.com/photo-1521572163474-6864f9cf17ab?w=400", Description: "Size M, worn twice."},
		{ID: 5, Title: "Calculus Tutoring", Price: 20, Category: models.CategoryServices, Seller: "student2@ufl.edu",
			Image: "https://images.unsplash.com/photo-1556761175-4b46a572b786?w=400", Description: "Per hour, MAC2311 and MAC2312."},
		{ID: 6, Title: "Football Game Ticket", Price: 60, Category: models.CategoryTickets, Seller: "student3@ufl.edu",
			Image: "https://images.unsplash.com/photo-1594608661623-aa0bd8a69762?w=400"},
	}
}

func seedNextID() int {
	highest := 0
	for _, l := range Seed() {
		if l.ID > highest {
			highest = l.ID
		}
	}
	return highest + 1
}
