// Package volume implements axis-aligned and oriented 3D boxes used to bound
// and test spatial extents.
//
// Both types are plain values. Operations never fail: NaN bounds, inverted
// bounds and the SetMinimal sentinel all produce defined results, and callers
// check IsNull or IsEmpty before treating a result as a physical volume.
// Mutating the same box from several goroutines requires external locking.
package volume
