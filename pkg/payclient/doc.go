// Package payclient provides the primary entry point for constructing a
// payment API client that implements the payapi.Client interface.
//
// It layers configuration validation, endpoint normalization, and the HTTP
// transport on top of the resource interfaces and types defined in the payapi
// package. Most applications should import payclient to build a client, then
// use the returned payapi.Client to access resource-specific clients, for
// example Payments(), Orders(), Customers().
//
// Quick start
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/paygate-io/payapi/pkg/payapi"
//	  "github.com/paygate-io/payapi/pkg/payclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//
//	  cli, err := payclient.NewWithKey("test_dHar4XY7LxsDOtmnkVtjNVWXLSlXsM")
//	  if err != nil { log.Fatal(err) }
//
//	  payments, err := cli.Payments().List(ctx, payapi.NewListOptions().WithLimit(10))
//	  if err != nil { log.Fatal(err) }
//	  _ = payments
//	}
package payclient
