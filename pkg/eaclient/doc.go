// Package eaclient provides the primary entry point for constructing an
// Easy!Appointments API client that implements the easyappointments.Client
// interface.
//
// It layers configuration, HTTP transport, retries, and caching on top of
// the resource interfaces and types defined in the easyappointments
// package. Most applications should import eaclient to build a client,
// then use the returned easyappointments.Client to access resource-specific
// clients, for example Providers(), Customers(), Appointments().
//
// Quick start
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
//	  ctx := context.Background()
//
//	  client, err := eaclient.NewWithAPIKey("https://booking.example.com/index.php/api/v1", "secret")
//	  if err != nil { log.Fatal(err) }
//	  defer client.Close()
//
//	  customers, err := client.Customers().List(ctx, easyappointments.NewListOptions())
//	  if err != nil { log.Fatal(err) }
//	  _ = customers
//	}
//
// # Deadlines
//
// Config.HTTPTimeout bounds each attempt; the retry loop as a whole is
// bounded only by the caller's context. Pass a context with a deadline to
// cap the total time spent across retries.
package eaclient
