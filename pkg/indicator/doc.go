// Package indicator provides streaming indicators computed incrementally
// over a time-ordered feed of values. Every indicator is a thin formula
// plugged into one shared engine (Node), which owns warmup tracking, the
// commit/revise lifecycle for still-open intervals, and re-emission to
// downstream subscribers.
//
// Indicators compose into acyclic graphs at construction time:
//
//	prices := types.NewTickStream("prices")
//	fastEMA := indicator.EMA(prices, 7)
//	slowEMA := indicator.EMA(prices, 25)
//	macd := indicator.Subtract(fastEMA, slowEMA)
//	signal := indicator.EMA(macd, 16)
//	histogram := indicator.Subtract(macd, signal)
//
// A single prices.Push drives the whole graph synchronously.
package indicator
