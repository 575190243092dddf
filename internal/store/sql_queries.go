// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Apex Glitch

package store

const (
	createUser = `INSERT INTO users (email, password, role)
    VALUES (?, ?, ?);`

	findUserByEmail = `SELECT id, email, password, role, created_at
    FROM users
    WHERE email = ?;`

	findUserByID = `SELECT id, email, password, role, created_at
    FROM users
    WHERE id = ?;`

	countAdmins = `SELECT COUNT(*)
    FROM users
    WHERE role = ?;`

	updateUserPassword = `UPDATE users
    SET password = ?
    WHERE id = ?;`

	updateUserEmail = `UPDATE users
    SET email = ?
    WHERE id = ?;`

	getCustomerByID = `SELECT *
    FROM customers
    WHERE id = ?;`

	getAllCustomers = `SELECT *
    FROM customers
    ORDER BY created_at DESC;`

	deleteCustomer = `DELETE FROM customers
    WHERE id = ?;`

	createDocument = `INSERT INTO documents (
        customer_id,
        filename,
        original_filename,
        file_path,
        file_size,
        file_type,
        category,
        description
    ) VALUES (?, ?, ?, ?, ?, ?, ?, ?);`

	getDocumentByID = `SELECT id, customer_id, filename, original_filename, file_path, file_size, file_type, category, description, uploaded_at
    FROM documents
    WHERE id = ?;`

	getDocumentsByCustomer = `SELECT id, customer_id, filename, original_filename, file_path, file_size, file_type, category, description, uploaded_at
    FROM documents
    WHERE customer_id = ?
    ORDER BY uploaded_at DESC;`

	getDocumentPathsByCustomer = `SELECT file_path
    FROM documents
    WHERE customer_id = ?;`

	deleteDocument = `DELETE FROM documents
    WHERE id = ?;`
)
