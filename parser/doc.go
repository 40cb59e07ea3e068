// Package parser turns SQL-ish command lines into the structured commands
// the engine executes. It sits entirely outside the engine boundary: the
// engine never sees text, only database.Command values.
//
// The grammar is declared as participle struct tags over a small lexer, one
// struct per statement form:
//
//	CREATE TABLE users (id INT PRIMARY KEY, email TEXT UNIQUE, name TEXT)
//	CREATE INDEX ON users (name)
//	DROP TABLE users
//	INSERT INTO users VALUES (1, 'a@x.com', 'Alice')
//	SELECT name, email FROM users WHERE id = 1
//	SELECT * FROM users JOIN cities ON users.city_id = cities.id
//	UPDATE users SET name = 'Bob' WHERE id = 1
//	DELETE FROM users WHERE id = 1
//
// Literal types are decided by the token, never by the target column: quoted
// text is TEXT, a number with a decimal point or exponent is FLOAT, a bare
// number is INT, true/false are BOOL. The engine's strict validation then
// accepts or rejects the literal against the schema, so the parser cannot
// smuggle in a coercion.
//
// Supported predicate and join forms match the engine's limits: a WHERE
// clause is a single column = literal equality, and JOIN is the single-
// condition inner form only.
package parser
