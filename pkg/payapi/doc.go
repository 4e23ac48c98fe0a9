// Package payapi defines the public types and interfaces for the payment API
// client: entity types (Payment, Order, Refund, ...), the resource client
// interfaces, error classification, query parameters, and cursor pagination.
//
// Most applications construct a client through the payclient package and use
// the returned payapi.Client to reach resource clients:
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
//	  cli, err := payclient.New(&payapi.Config{APIKey: "test_dHar4XY7LxsDOtmnkVtjNVWXLSlXsM"})
//	  if err != nil { log.Fatal(err) }
//
//	  payment, err := cli.Payments().Create(ctx, &payapi.PaymentCreateRequest{
//	    Amount:      payapi.Amount{Currency: "EUR", Value: "10.00"},
//	    Description: "Order #12345",
//	    RedirectURL: "https://example.org/return",
//	  })
//	  if err != nil { log.Fatal(err) }
//	  _ = payment.CheckoutURL()
//	}
//
// # Pagination
//
// List operations return a Page. Pages navigate by opaque cursor links:
// NextPage and PreviousPage each issue one request and return (nil, nil) when
// the corresponding cursor is absent. PageIterator walks items across pages.
//
// # Errors
//
// Failures are one of two kinds. RequestError is a local precondition failure
// (malformed id, missing parent id, unsupported operation) raised before any
// request is sent. APIError is a rejection from the API or a transport fault,
// carrying the HTTP status, the offending field when reported, and diagnostic
// links. Both unwrap with errors.As; IsNotFound, IsUnauthorized and
// IsRequestError cover the common checks.
//
// # Asynchronous calls
//
// Async wraps any operation into a Future and optionally delivers the result
// to a completion callback as well; the callback fires at most once, with the
// same value the future settles with.
package payapi
