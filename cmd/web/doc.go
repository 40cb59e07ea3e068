// Package web is the HTTP front end: a thin JSON adapter over the database
// facade. It never interprets data itself — request bodies are shaped into
// structured engine calls, results come back as JSON payloads, and engine
// errors are rendered as {"detail": message} with the status code mapped
// from the error taxonomy (404 for missing tables, 409 for conflicts and
// constraint violations, 400 for malformed requests, 500 for storage
// failures).
//
// API Endpoints:
//   - GET  /                    : endpoint directory
//   - GET  /health              : liveness plus table count
//   - GET  /tables              : list table names
//   - POST /tables              : create a table
//   - GET  /tables/{name}       : schema info for one table
//   - DELETE /tables/{name}     : drop a table
//   - POST /rows                : insert a row
//   - PUT  /rows                : update rows
//   - DELETE /rows              : delete rows
//   - POST /query               : select with optional filter and projection
//
// Concurrency: handlers run on the server's request goroutines, but every
// call funnels through the database facade's single mutex, preserving the
// engine's one-writer-at-a-time model.
package web
