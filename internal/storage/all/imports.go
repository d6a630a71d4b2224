// Package all wires every built-in storage backend into the storage factory.
//
// This package exists purely for side effects: importing it (even as a blank
// import) runs the init functions of each backend, which register their
// factories with the storage package. After that, storage.New accepts the
// kinds "mysql", "postgres", "mssql", and "sqlite".
//
// A binary that needs only a subset can import the individual backend
// packages instead.
package all

import (
	_ "agrietl/internal/storage/mssql"
	_ "agrietl/internal/storage/mysql"
	_ "agrietl/internal/storage/postgres"
	_ "agrietl/internal/storage/sqlite"
)
