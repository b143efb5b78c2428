// Package part contains the Part aggregate of the inventory store.
//
// A Part owns its stock counter and its price. Availability is never stored
// independently of stock: a part is available exactly when it has at least one
// unit on hand, so every stock mutation keeps both in agreement.
package part
