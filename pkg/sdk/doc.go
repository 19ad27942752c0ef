// Package propdex provides an in-process Go client for the prop firm catalog
// backed by Redis (JSON + search modules) or MongoDB.
//
// The client wires the same repositories and query layer the HTTP API uses,
// so programs can read the catalog without going through HTTP.
//
//	client, _ := propdex.New(ctx, propdex.WithRedis("localhost:6379", ""), propdex.WithSeed())
//	defer client.Close()
//
//	firms, _ := client.List(ctx,
//	    propdex.Platform("MetaTrader 5"),
//	    propdex.MinProfitSplit(85),
//	    propdex.Limit(10),
//	)
//	stats, _ := client.Statistics(ctx)
package propdex
