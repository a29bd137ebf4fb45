package store

import (
	"customer_registry/internal/db"     // Scoped connection acquisition
	"customer_registry/internal/domain" // Importing domain models

	"github.com/sirupsen/logrus" // Logging library
)

// AddCustomer inserts a new customer row with an auto-assigned ID.
// Returns ErrEmailTaken if the email is already registered.
func (s *Store) AddCustomer(name, email, phone string) (domain.Customer, error) {
	conn, err := db.Open(s.Path) // Fresh connection for this operation
	if err != nil {
		return domain.Customer{}, err
	}
	defer db.Close(conn) // Release the connection on every exit path

	customer := domain.Customer{Name: name, Email: email, Phone: phone}
	if err := conn.Create(&customer).Error; err != nil {
		if err = asConflict(err); err != ErrEmailTaken {
			// Log unexpected store failures with context
			logrus.WithFields(logrus.Fields{
				"name":  name,
				"email": email,
				"error": err.Error(),
			}).Error("Failed to add customer")
		}
		return domain.Customer{}, err
	}
	return customer, nil
}

// ListCustomers retrieves all customers in store-default (insertion) order
func (s *Store) ListCustomers() ([]domain.Customer, error) {
	conn, err := db.Open(s.Path)
	if err != nil {
		return nil, err
	}
	defer db.Close(conn)

	var customers []domain.Customer
	// No explicit ordering: SQLite returns rows in rowid (insertion) order
	if err := conn.Find(&customers).Error; err != nil {
		logrus.WithField("error", err.Error()).Error("Failed to list customers")
		return nil, err
	}
	return customers, nil
}

// UpdateCustomer overwrites name, email and phone of the customer matching id.
// Returns ErrCustomerNotFound when no row matched, ErrEmailTaken when the new
// email belongs to a different customer. The update is a single atomic
// statement; nothing is applied on conflict.
func (s *Store) UpdateCustomer(id uint, name, email, phone string) error {
	conn, err := db.Open(s.Path)
	if err != nil {
		return err
	}
	defer db.Close(conn)

	// Map form so zero values (empty phone) are written too
	res := conn.Model(&domain.Customer{}).Where("id = ?", id).Updates(map[string]any{
		"name":  name,  // New name
		"email": email, // New email
		"phone": phone, // New phone
	})
	if res.Error != nil {
		if err := asConflict(res.Error); err == ErrEmailTaken {
			return err
		}
		logrus.WithFields(logrus.Fields{
			"customer_id": id,
			"error":       res.Error.Error(),
		}).Error("Failed to update customer")
		return res.Error
	}
	// Zero rows matched means the ID does not exist
	if res.RowsAffected == 0 {
		return ErrCustomerNotFound
	}
	return nil
}

// DeleteCustomer removes the customer matching id. Associated orders are
// removed by the store's ON DELETE CASCADE constraint; foreign-key
// enforcement is active on the connection because db.Open bakes it into the
// DSN. Returns ErrCustomerNotFound when no row matched.
func (s *Store) DeleteCustomer(id uint) error {
	conn, err := db.Open(s.Path)
	if err != nil {
		return err
	}
	defer db.Close(conn)

	res := conn.Delete(&domain.Customer{}, id)
	if res.Error != nil {
		logrus.WithFields(logrus.Fields{
			"customer_id": id,
			"error":       res.Error.Error(),
		}).Error("Failed to delete customer")
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrCustomerNotFound
	}
	return nil
}
