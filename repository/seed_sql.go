package repository

// Fixed statements used to provision the dashboard schema and demo rows.
// Every insert skips rows whose key already exists, so re-running them is
// a no-op.
const (
	CreateUUIDExtension = `CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`

	CreateUsersTable = `
	CREATE TABLE IF NOT EXISTS users (
		id UUID DEFAULT uuid_generate_v4() PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		email TEXT NOT NULL UNIQUE,
		password TEXT NOT NULL
	)`

	InsertUser = `
	INSERT INTO users (id, name, email, password)
	VALUES (?, ?, ?, ?)
	ON CONFLICT (id) DO NOTHING`

	CreateCustomersTable = `
	CREATE TABLE IF NOT EXISTS customers (
		id UUID DEFAULT uuid_generate_v4() PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		email VARCHAR(255) NOT NULL,
		image_url VARCHAR(255) NOT NULL
	)`

	InsertCustomer = `
	INSERT INTO customers (id, name, email, image_url)
	VALUES (?, ?, ?, ?)
	ON CONFLICT (id) DO NOTHING`

	CreateInvoicesTable = `
	CREATE TABLE IF NOT EXISTS invoices (
		id UUID DEFAULT uuid_generate_v4() PRIMARY KEY,
		customer_id UUID NOT NULL,
		amount INT NOT NULL,
		status VARCHAR(255) NOT NULL,
		date DATE NOT NULL
	)`

	InsertInvoice = `
	INSERT INTO invoices (id, customer_id, amount, status, date)
	VALUES (?, ?, ?, ?, ?)
	ON CONFLICT (id) DO NOTHING`

	CreateRevenueTable = `
	CREATE TABLE IF NOT EXISTS revenue (
		month VARCHAR(4) NOT NULL UNIQUE,
		revenue INT NOT NULL
	)`

	InsertRevenue = `
	INSERT INTO revenue (month, revenue)
	VALUES (?, ?)
	ON CONFLICT (month) DO NOTHING`

	// DeleteDuplicateInvoices keeps the lowest id of every
	// (customer_id, amount, date) group.
	DeleteDuplicateInvoices = `
	WITH ranked AS (
		SELECT
			id,
			ROW_NUMBER() OVER (PARTITION BY customer_id, amount, date ORDER BY id) AS row_num
		FROM invoices
	)
	DELETE FROM invoices
	WHERE id IN (
		SELECT id FROM ranked WHERE row_num > 1
	)`
)
