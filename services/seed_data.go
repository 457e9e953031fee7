package services

import (
	"fmt"

	"github.com/google/uuid"
)

// SeedUser is a demo login; Password is plaintext and hashed before storage.
type SeedUser struct {
	ID       string
	Name     string
	Email    string
	Password string
}

type SeedCustomer struct {
	ID       string
	Name     string
	Email    string
	ImageURL string
}

// SeedInvoice has no fixed id; ID derives one from its contents.
type SeedInvoice struct {
	CustomerID string
	Amount     int64
	Status     string
	Date       string
}

type SeedRevenue struct {
	Month   string
	Revenue int
}

// SeedData is the full demo dataset provisioned by the Seeder.
type SeedData struct {
	Users     []SeedUser
	Customers []SeedCustomer
	Invoices  []SeedInvoice
	Revenue   []SeedRevenue
}

var seedInvoiceNamespace = uuid.MustParse("6f1c7a8e-3c1b-4d0a-9a57-5d2f0b1e8c44")

// ID is a name-based UUID of the invoice's fields, stable across runs so a
// re-seed conflicts on the primary key instead of inserting a copy.
func (inv SeedInvoice) ID() string {
	name := fmt.Sprintf("%s|%d|%s|%s", inv.CustomerID, inv.Amount, inv.Status, inv.Date)
	return uuid.NewSHA1(seedInvoiceNamespace, []byte(name)).String()
}

var demoCustomers = []SeedCustomer{
	{ID: "d6e15727-9fe1-4961-8c5b-ea44a9bd81aa", Name: "Evil Rabbit", Email: "evil@rabbit.com", ImageURL: "/customers/evil-rabbit.png"},
	{ID: "3958dc9e-712f-4377-85e9-fec4b6a6442a", Name: "Delba de Oliveira", Email: "delba@oliveira.com", ImageURL: "/customers/delba-de-oliveira.png"},
	{ID: "3958dc9e-742f-4377-85e9-fec4b6a6442a", Name: "Lee Robinson", Email: "lee@robinson.com", ImageURL: "/customers/lee-robinson.png"},
	{ID: "76d65c26-f784-44a2-ac19-586678f7c2f2", Name: "Michael Novotny", Email: "michael@novotny.com", ImageURL: "/customers/michael-novotny.png"},
	{ID: "cc27c14a-0acf-4f4a-a6c9-d45682c144b9", Name: "Amy Burns", Email: "amy@burns.com", ImageURL: "/customers/amy-burns.png"},
	{ID: "13d07535-c59e-4157-a011-f8d2ef4e0cbb", Name: "Balazs Orban", Email: "balazs@orban.com", ImageURL: "/customers/balazs-orban.png"},
}

// DemoData is the dataset served by GET /seed.
var DemoData = SeedData{
	Users: []SeedUser{
		{ID: "410544b2-4001-4271-9855-fec4b6a6442a", Name: "User", Email: "user@nextmail.com", Password: "123456"},
	},
	Customers: demoCustomers,
	Invoices: []SeedInvoice{
		{CustomerID: demoCustomers[0].ID, Amount: 15795, Status: "pending", Date: "2022-12-06"},
		{CustomerID: demoCustomers[1].ID, Amount: 20348, Status: "pending", Date: "2022-11-14"},
		{CustomerID: demoCustomers[4].ID, Amount: 3040, Status: "paid", Date: "2022-10-29"},
		{CustomerID: demoCustomers[3].ID, Amount: 44800, Status: "paid", Date: "2023-09-10"},
		{CustomerID: demoCustomers[5].ID, Amount: 34577, Status: "pending", Date: "2023-08-05"},
		{CustomerID: demoCustomers[2].ID, Amount: 54246, Status: "pending", Date: "2023-07-16"},
		{CustomerID: demoCustomers[0].ID, Amount: 666, Status: "pending", Date: "2023-06-27"},
		{CustomerID: demoCustomers[3].ID, Amount: 32545, Status: "paid", Date: "2023-06-09"},
		{CustomerID: demoCustomers[4].ID, Amount: 1250, Status: "paid", Date: "2023-06-17"},
		{CustomerID: demoCustomers[5].ID, Amount: 8546, Status: "paid", Date: "2023-06-07"},
		{CustomerID: demoCustomers[1].ID, Amount: 500, Status: "paid", Date: "2023-08-19"},
		{CustomerID: demoCustomers[5].ID, Amount: 8945, Status: "paid", Date: "2023-06-03"},
		{CustomerID: demoCustomers[2].ID, Amount: 1000, Status: "paid", Date: "2022-06-05"},
	},
	Revenue: []SeedRevenue{
		{Month: "Jan", Revenue: 2000},
		{Month: "Feb", Revenue: 1800},
		{Month: "Mar", Revenue: 2200},
		{Month: "Apr", Revenue: 2500},
		{Month: "May", Revenue: 2300},
		{Month: "Jun", Revenue: 3200},
		{Month: "Jul", Revenue: 3500},
		{Month: "Aug", Revenue: 3700},
		{Month: "Sep", Revenue: 2500},
		{Month: "Oct", Revenue: 2800},
		{Month: "Nov", Revenue: 3000},
		{Month: "Dec", Revenue: 4800},
	},
}
