// Package level defines the Sokoban board data model (§3): cell codes,
// the Level itself (dimensions, walls, goals, the pusher's start cell),
// and Node, the canonical (boxes, pusher-reachability) state pair that
// the rest of sokolve searches over.
//
// Level construction validates the board (§7 invalid_input): exactly
// one pusher, equal box and goal counts, and every box/goal/pusher cell
// mutually reachable through floor cells. Connectivity is checked by a
// direct flood fill over raw grid indices, since the check runs once at
// load time, before New has even built the zone.Map that Node's own
// FloodFill (§4.3) would otherwise flood-fill through.
package level
