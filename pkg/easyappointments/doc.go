// Package easyappointments provides types, interfaces, and helpers for
// working with the Easy!Appointments REST API.
//
// # Overview
//
// The package defines the domain types (Admin, Provider, Customer,
// Appointment, Availability), the typed error taxonomy surfaced by every
// operation, and the interfaces for resource-oriented clients. A concrete
// implementation of these clients is provided by the eaclient package,
// which wires configuration, transport, retries, and caching. Most
// consumers should import eaclient to construct a client and then interact
// with the resource client interfaces exposed here.
//
// Getting a client:
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/voctra-ai/easy-appointments-client/pkg/eaclient"
//	  "github.com/voctra-ai/easy-appointments-client/pkg/easyappointments"
//	)
//
//	func example() {
//	  client, err := eaclient.New(&easyappointments.Config{
//	    BaseURL: "https://booking.example.com/index.php/api/v1",
//	    APIKey:  "secret",
//	  })
//	  if err != nil { log.Fatal(err) }
//	  defer client.Close()
//
//	  page, err := client.Providers().List(context.Background(), easyappointments.NewListOptions())
//	  if err != nil { log.Fatal(err) }
//	  _ = page
//	}
//
// # Errors
//
// Every failed call surfaces a *easyappointments.Error carrying a closed
// Kind enum, the HTTP status code, the extracted message, the raw response
// body, and the server's request id. Switch on Kind (or use the IsNotFound,
// IsRateLimited, ... helpers) rather than on error identity:
//
//	_, err := client.Customers().Get(ctx, 42)
//	if easyappointments.IsNotFound(err) {
//	  // handle absence
//	}
//
// Transient failures (rate limits, 5xx responses, transport errors) are
// retried with capped exponential backoff before they are surfaced; the
// error the caller sees is the same one it would have seen without retries.
//
// # Pagination
//
// List operations resolve to Page[T] regardless of whether the server
// answered with a bare JSON array or a pagination envelope. A bare array
// yields a page with Total equal to the item count and no cursors; this is
// a degraded-but-valid state, not an error.
package easyappointments
