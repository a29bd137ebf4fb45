package store

import (
	"errors" // gorm.ErrRecordNotFound checks
	"time"   // Order creation date

	"customer_registry/internal/db"     // Scoped connection acquisition
	"customer_registry/internal/domain" // Importing domain models

	"github.com/shopspring/decimal" // Exact decimal amounts
	"github.com/sirupsen/logrus"    // Logging library
	"gorm.io/gorm"                  // GORM ORM library
)

// OrderWithCustomer is one row of the orders/customers join
type OrderWithCustomer struct {
	OrderID       uint            // Order primary key
	Product       string          // Product name
	Amount        decimal.Decimal // Order amount
	Date          time.Time       // Order creation date
	CustomerName  string          // Owning customer's name
	CustomerEmail string          // Owning customer's email
}

// AddOrder inserts an order for an existing customer with the date set to
// the current date. Returns ErrCustomerNotFound (and inserts nothing) when
// no customer matches customerID.
func (s *Store) AddOrder(customerID uint, product string, amount decimal.Decimal) (domain.Order, error) {
	conn, err := db.Open(s.Path) // Fresh connection for this operation
	if err != nil {
		return domain.Order{}, err
	}
	defer db.Close(conn) // Release the connection on every exit path

	// Verify the customer exists before inserting
	var customer domain.Customer
	if err := conn.First(&customer, customerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Order{}, ErrCustomerNotFound
		}
		return domain.Order{}, err
	}

	order := domain.Order{
		Product:    product,    // Product name
		Amount:     amount,     // Order amount
		Date:       today(),    // Current date at insert time
		CustomerID: customerID, // Owning customer
	}
	if err := conn.Create(&order).Error; err != nil {
		logrus.WithFields(logrus.Fields{
			"customer_id": customerID,
			"product":     product,
			"error":       err.Error(),
		}).Error("Failed to add order")
		return domain.Order{}, err
	}
	return order, nil
}

// ListOrdersWithCustomers retrieves every order joined to its owning
// customer, ordered by customer name ascending then order date descending
func (s *Store) ListOrdersWithCustomers() ([]OrderWithCustomer, error) {
	conn, err := db.Open(s.Path)
	if err != nil {
		return nil, err
	}
	defer db.Close(conn)

	var rows []OrderWithCustomer
	err = conn.Model(&domain.Order{}).
		Select("orders.id AS order_id, orders.product, orders.amount, orders.date, " +
			"customers.name AS customer_name, customers.email AS customer_email").
		Joins("JOIN customers ON customers.id = orders.customer_id").
		Order("customers.name ASC, orders.date DESC").
		Scan(&rows).Error
	if err != nil {
		logrus.WithField("error", err.Error()).Error("Failed to list orders")
		return nil, err
	}
	return rows, nil
}

// today returns the current calendar date with the time part zeroed
func today() time.Time {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}
