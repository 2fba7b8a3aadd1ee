package seed

import "github.com/dmitrijs2005/gatormarket/internal/server/items"

type account struct {
	Username string
	Email    string
	Password string
	IsAdmin  bool
}

// Accounts are the demo users. Items are handed out round-robin in this order.
var Accounts = []account{
	{Username: "admin1", Email: "admin1@ufl.edu", Password: "Passw0rd1!", IsAdmin: true},
	{Username: "admin2", Email: "admin2@ufl.edu", Password: "Passw0rd2!", IsAdmin: true},
	{Username: "user1", Email: "user1@ufl.edu", Password: "UserPass1!"},
	{Username: "user2", Email: "user2@ufl.edu", Password: "UserPass2!"},
	{Username: "seed_owner", Email: "seed_owner@ufl.edu", Password: "SeedPass!"},
}

type template struct {
	Title    string
	MinPrice float64
	MaxPrice float64
}

var templates = map[string][]template{
	items.CategorySchool: {
		{"Intro to CS Textbook", 45, 120}, {"Calculus Textbook", 50, 100}, {"Biology Lab Manual", 25, 60},
		{"Chemistry Study Guide", 20, 45}, {"Physics Notebook Set", 15, 30}, {"Graphing Calculator", 60, 100},
		{"Scientific Calculator", 25, 40}, {"Lab Coat", 30, 50}, {"Anatomy Atlas", 40, 80},
		{"Programming Guide", 35, 70}, {"Statistics Textbook", 45, 90}, {"Engineering Handbook", 50, 95},
		{"Art Supplies Kit", 30, 60}, {"Literature Anthology", 35, 65}, {"Psychology Textbook", 40, 85},
		{"Economics Workbook", 30, 55}, {"History Reference", 25, 50}, {"Language Dictionary", 20, 45},
		{"Math Solutions Manual", 35, 70}, {"Science Lab Kit", 40, 75},
	},
	items.CategoryApparel: {
		{"UF T-Shirt", 15, 25}, {"Gators Hoodie", 30, 50}, {"UF Baseball Cap", 12, 20},
		{"Spirit Jersey", 35, 55}, {"Sweatpants", 20, 35}, {"Athletic Shorts", 15, 28},
		{"Polo Shirt", 20, 40}, {"Windbreaker Jacket", 35, 60}, {"Tank Top", 12, 22},
		{"Long Sleeve Tee", 18, 30}, {"Zip-Up Hoodie", 32, 55}, {"Track Jacket", 28, 48},
		{"Sweatshirt", 25, 45}, {"Flannel Shirt", 22, 38}, {"Denim Jacket", 40, 70},
		{"Beanie", 10, 18}, {"Scarf", 12, 22}, {"Backpack", 35, 65},
		{"Gym Bag", 20, 40}, {"Socks Pack", 10, 18},
	},
	items.CategoryLiving: {
		{"Mini Fridge", 60, 120}, {"Desk Lamp", 15, 35}, {"Study Desk", 50, 100},
		{"Office Chair", 45, 90}, {"Bed Frame", 80, 150}, {"Mattress Topper", 40, 75},
		{"Nightstand", 30, 60}, {"Bookshelf", 35, 70}, {"Floor Lamp", 25, 50},
		{"Bean Bag Chair", 30, 60}, {"Coffee Table", 40, 80}, {"TV Stand", 45, 85},
		{"Storage Bins Set", 20, 40}, {"Laundry Basket", 15, 25}, {"Shower Caddy", 12, 22},
		{"Bedding Set", 35, 65}, {"Curtains", 20, 40}, {"Area Rug", 30, 60},
		{"Mirror", 25, 45}, {"Hangers Pack", 10, 20},
	},
	items.CategoryServices: {
		{"Tutoring - Calculus", 20, 40}, {"Tutoring - Chemistry", 20, 40}, {"Tutoring - Physics", 25, 45},
		{"Essay Editing", 15, 30}, {"Resume Review", 20, 35}, {"Math Tutoring", 20, 40},
		{"Programming Help", 30, 50}, {"Language Tutoring", 25, 45}, {"Test Prep Session", 30, 55},
		{"Study Group Leader", 15, 30}, {"Homework Help", 15, 35}, {"Lab Report Editing", 20, 40},
		{"Presentation Practice", 15, 30}, {"Writing Workshop", 25, 45}, {"Career Counseling", 30, 50},
		{"Interview Prep", 25, 45}, {"Photography Session", 40, 80}, {"Graphic Design", 35, 70},
		{"Web Design Help", 40, 75}, {"Music Lessons", 30, 60},
	},
	items.CategoryTickets: {
		{"Football Game Tickets", 40, 80}, {"Basketball Game Tickets", 25, 50}, {"Baseball Game Tickets", 15, 30},
		{"Concert Tickets", 30, 70}, {"Theater Show Tickets", 20, 45}, {"Comedy Show Tickets", 15, 35},
		{"Music Festival Pass", 50, 80}, {"Museum Pass", 10, 20}, {"Movie Tickets", 10, 25},
		{"Sporting Event Tickets", 30, 60}, {"Orchestra Tickets", 20, 40}, {"Dance Performance", 15, 35},
		{"Art Exhibition Pass", 12, 25}, {"Guest Lecture Tickets", 10, 20}, {"Workshop Pass", 15, 30},
		{"Seminar Access", 20, 40}, {"Conference Tickets", 30, 60}, {"Game Night Pass", 10, 20},
		{"Club Event Tickets", 15, 30}, {"Social Event Pass", 12, 25},
	},
}
