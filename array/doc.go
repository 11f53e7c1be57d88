// Package array
// Author: momentics <momentics@gmail.com>
//
// Preallocated fixed-length arrays over externally owned storage for
// hioload-mem. A PreallocatedArray is a one-word view whose backing
// region embeds the element count as a hidden first slot, so the view is
// self-describing without a separate size field. The package also ships
// the construction policy that plugs such arrays into an object pool,
// giving a pool of run-time-sized arrays with the pool none the wiser.
//
// Arrays follow a move-only discipline: exactly one live view holds the
// right to destruct the elements at a given address.
package array
