package menu

import (
	"bufio"   // Console line reading
	"errors"  // Sentinel error checks
	"fmt"     // User-facing output
	"io"      // Injectable input/output for testing
	"strconv" // String to number conversion
	"strings" // Input trimming

	"customer_registry/internal/store" // Data operations

	"github.com/shopspring/decimal" // Order amount parsing
)

// Run displays the main menu and dispatches operator choices until the exit
// choice is given or input ends. All operation errors are reported to out
// and the loop continues; nothing here is fatal.
func Run(in io.Reader, out io.Writer, st *store.Store) {
	scanner := bufio.NewScanner(in)
	for {
		printMenu(out)
		choice, ok := prompt(scanner, out, "Enter your choice: ")
		if !ok {
			return // End of input ends the loop like the exit choice
		}
		switch choice {
		case "1":
			addCustomer(scanner, out, st)
		case "2":
			listCustomers(out, st)
		case "3":
			updateCustomer(scanner, out, st)
		case "4":
			deleteCustomer(scanner, out, st)
		case "5":
			addOrder(scanner, out, st)
		case "6":
			listOrders(out, st)
		case "0":
			fmt.Fprintln(out, "\nExiting the system. Goodbye!")
			return
		default:
			fmt.Fprintln(out, "\nInvalid option. Try again.")
		}
	}
}

// printMenu writes the main menu
func printMenu(out io.Writer) {
	fmt.Fprintln(out, "\n--- Customer Registry ---")
	fmt.Fprintln(out, "--- Manage Customers -----")
	fmt.Fprintln(out, "1. Add Customer")
	fmt.Fprintln(out, "2. List Customers")
	fmt.Fprintln(out, "3. Update Customer")
	fmt.Fprintln(out, "4. Delete Customer")
	fmt.Fprintln(out, "---- Manage Orders -------")
	fmt.Fprintln(out, "5. Add Order")
	fmt.Fprintln(out, "6. List All Orders")
	fmt.Fprintln(out, "--------------------------")
	fmt.Fprintln(out, "0. Exit")
}

// prompt writes label and reads one trimmed line; ok is false on end of input
func prompt(scanner *bufio.Scanner, out io.Writer, label string) (string, bool) {
	fmt.Fprint(out, label)
	if !scanner.Scan() {
		return "", false
	}
	return strings.TrimSpace(scanner.Text()), true
}

// addCustomer prompts for the customer fields and inserts the row
func addCustomer(scanner *bufio.Scanner, out io.Writer, st *store.Store) {
	name, ok := prompt(scanner, out, "Customer name: ")
	if !ok {
		return
	}
	email, ok := prompt(scanner, out, "Customer email: ")
	if !ok {
		return
	}
	phone, ok := prompt(scanner, out, "Customer phone: ")
	if !ok {
		return
	}
	customer, err := st.AddCustomer(name, email, phone)
	switch {
	case errors.Is(err, store.ErrEmailTaken):
		fmt.Fprintf(out, "\nError: the email '%s' is already registered.\n", email)
	case err != nil:
		fmt.Fprintf(out, "\nAn error occurred: %v\n", err)
	default:
		fmt.Fprintf(out, "\nCustomer '%s' added successfully!\n", customer.Name)
	}
}

// listCustomers prints every registered customer
func listCustomers(out io.Writer, st *store.Store) {
	customers, err := st.ListCustomers()
	if err != nil {
		fmt.Fprintf(out, "\nAn error occurred: %v\n", err)
		return
	}
	if len(customers) == 0 {
		fmt.Fprintln(out, "\nNo customers registered.")
		return
	}
	fmt.Fprintln(out, "\n--- Customer List ---")
	for _, c := range customers {
		fmt.Fprintf(out, "ID: %d | Name: %s | Email: %s | Phone: %s\n", c.ID, c.Name, c.Email, c.Phone)
	}
	fmt.Fprintln(out, "---------------------")
}

// updateCustomer prompts for an ID plus new field values and applies them
func updateCustomer(scanner *bufio.Scanner, out io.Writer, st *store.Store) {
	idText, ok := prompt(scanner, out, "ID of the customer to update: ")
	if !ok {
		return
	}
	id, err := strconv.ParseUint(idText, 10, 64)
	if err != nil {
		fmt.Fprintln(out, "\nInvalid ID. Please enter a number.")
		return
	}
	name, ok := prompt(scanner, out, "New name: ")
	if !ok {
		return
	}
	email, ok := prompt(scanner, out, "New email: ")
	if !ok {
		return
	}
	phone, ok := prompt(scanner, out, "New phone: ")
	if !ok {
		return
	}
	switch err := st.UpdateCustomer(uint(id), name, email, phone); {
	case errors.Is(err, store.ErrCustomerNotFound):
		fmt.Fprintf(out, "\nError: no customer found with ID %d.\n", id)
	case errors.Is(err, store.ErrEmailTaken):
		fmt.Fprintf(out, "\nError: the email '%s' already belongs to another customer.\n", email)
	case err != nil:
		fmt.Fprintf(out, "\nAn error occurred: %v\n", err)
	default:
		fmt.Fprintf(out, "\nCustomer ID %d updated successfully!\n", id)
	}
}

// deleteCustomer prompts for an ID and removes the customer plus its orders
func deleteCustomer(scanner *bufio.Scanner, out io.Writer, st *store.Store) {
	idText, ok := prompt(scanner, out, "ID of the customer to delete: ")
	if !ok {
		return
	}
	id, err := strconv.ParseUint(idText, 10, 64)
	if err != nil {
		fmt.Fprintln(out, "\nInvalid ID. Please enter a number.")
		return
	}
	switch err := st.DeleteCustomer(uint(id)); {
	case errors.Is(err, store.ErrCustomerNotFound):
		fmt.Fprintf(out, "\nError: no customer found with ID %d.\n", id)
	case err != nil:
		fmt.Fprintf(out, "\nAn error occurred: %v\n", err)
	default:
		fmt.Fprintf(out, "\nCustomer ID %d and all of their orders were deleted successfully.\n", id)
	}
}

// addOrder prompts for the order fields and inserts the row
func addOrder(scanner *bufio.Scanner, out io.Writer, st *store.Store) {
	idText, ok := prompt(scanner, out, "Customer ID for the order: ")
	if !ok {
		return
	}
	id, err := strconv.ParseUint(idText, 10, 64)
	if err != nil {
		fmt.Fprintln(out, "\nInvalid ID or amount. Please enter numbers.")
		return
	}
	product, ok := prompt(scanner, out, "Product name: ")
	if !ok {
		return
	}
	amountText, ok := prompt(scanner, out, "Order amount: ")
	if !ok {
		return
	}
	amount, err := decimal.NewFromString(amountText)
	if err != nil {
		fmt.Fprintln(out, "\nInvalid ID or amount. Please enter numbers.")
		return
	}
	switch _, err := st.AddOrder(uint(id), product, amount); {
	case errors.Is(err, store.ErrCustomerNotFound):
		fmt.Fprintf(out, "\nError: customer with ID %d not found.\n", id)
	case err != nil:
		fmt.Fprintf(out, "\nAn error occurred: %v\n", err)
	default:
		fmt.Fprintf(out, "\nOrder for customer ID %d added successfully!\n", id)
	}
}

// listOrders prints every order joined to its owning customer
func listOrders(out io.Writer, st *store.Store) {
	rows, err := st.ListOrdersWithCustomers()
	if err != nil {
		fmt.Fprintf(out, "\nAn error occurred: %v\n", err)
		return
	}
	if len(rows) == 0 {
		fmt.Fprintln(out, "\nNo orders registered.")
		return
	}
	fmt.Fprintln(out, "\n--- All Orders ---")
	for _, r := range rows {
		fmt.Fprintf(out, "Order ID: %d | Product: %s | Amount: $%s | Date: %s | Customer: %s (%s)\n",
			r.OrderID, r.Product, r.Amount.StringFixed(2), r.Date.Format("2006-01-02"), r.CustomerName, r.CustomerEmail)
	}
	fmt.Fprintln(out, "------------------")
}
