// Package presenter holds the display-side view of the feed.
//
// Store implements service.FeedListener. The engine calls it from its queue;
// HTTP handlers read snapshots and subscribe to change events from any goroutine.
package presenter
