// Package ida implements the IDA* driver (§4.12): repeated
// github.com/katalvlaran/sokolve/astar iterations with a monotonically
// growing cost bound, each iteration's rejected min_reject becoming the
// next iteration's limit. The raised bound is persisted through an
// injected CostBoundStore after every iteration that raises it, so a crashed run can
// resume from the same bound instead of restarting at h(start).
package ida
