// Package transition changes a union value from one variant to another.
//
// Every family has one function with the same contract: an unknown tag returns
// (nil, false), the current tag returns the current value unchanged, and any
// other tag returns a default instance of the target with the fields that
// share a name and role with the old variant moved across. Fields with no
// counterpart are dropped. The caller replaces the old value in the tree.
package transition
