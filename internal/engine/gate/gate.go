// Package gate implements advisory change detection for gated task nodes.
package gate

import (
	"encoding/binary"
	"os"
	"slices"
	"strconv"
	"time"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/swan/internal/core/domain"
	"go.trai.ch/swan/internal/core/ports"
	"go.trai.ch/zerr"
)

// Gate decides whether a gated node's external invocation can be
// skipped. The decision is advisory: it only ever skips work, never
// fails a build. File modification times drive the freshness check; a
// fingerprint of the node's command, environment and input set catches
// configuration changes that leave mtimes untouched.
type Gate struct {
	resolver ports.InputResolver
	store    ports.FingerprintStore
}

// New creates a Gate backed by the given glob resolver and record store.
func New(resolver ports.InputResolver, store ports.FingerprintStore) *Gate {
	return &Gate{
		resolver: resolver,
		store:    store,
	}
}

// ShouldRun reports whether the node's invocation is needed.
//
// A node with declared input patterns that match no files is considered
// up to date. A node with no resolvable outputs always runs. Otherwise
// the node runs when its newest input is not older than its oldest
// output, or when a stored fingerprint no longer matches. Modification
// times are authoritative; the fingerprint only forces a rebuild when a
// previous run is on record with a different configuration.
func (g *Gate) ShouldRun(node *domain.TaskNode) (bool, error) {
	inputs, err := g.resolver.Resolve(node.Inputs, node.WorkingDir)
	if err != nil {
		return false, zerr.With(zerr.Wrap(err, "resolving gate inputs"), "task", node.ID.String())
	}
	if len(inputs) == 0 {
		return false, nil
	}

	outputs, err := g.resolver.Resolve(node.Outputs, node.WorkingDir)
	if err != nil {
		return false, zerr.With(zerr.Wrap(err, "resolving gate outputs"), "task", node.ID.String())
	}
	if len(outputs) == 0 {
		return true, nil
	}

	newestInput, err := newestMtime(inputs)
	if err != nil {
		return false, err
	}
	oldestOutput, err := oldestMtime(outputs)
	if err != nil {
		return false, err
	}
	if !newestInput.Before(oldestOutput) {
		return true, nil
	}

	record, err := g.store.Get(node.ID.String())
	if err != nil {
		return false, err
	}
	if record != nil && record.Fingerprint != fingerprint(node, inputs) {
		return true, nil
	}
	return false, nil
}

// Commit records the node's fingerprint after a successful run.
func (g *Gate) Commit(node *domain.TaskNode) error {
	inputs, err := g.resolver.Resolve(node.Inputs, node.WorkingDir)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "resolving gate inputs"), "task", node.ID.String())
	}
	return g.store.Put(domain.BuildRecord{
		TaskID:      node.ID.String(),
		Fingerprint: fingerprint(node, inputs),
		Timestamp:   time.Now().UTC(),
	})
}

// fingerprint hashes the configuration a node was invoked with: its
// command line, its environment and the resolved input set. Input file
// contents are deliberately excluded; content changes surface through
// mtimes.
func fingerprint(node *domain.TaskNode, inputs []string) string {
	digest := xxhash.New()
	writeStrings(digest, node.Command)
	writeStrings(digest, sortedEnv(node.Env))
	writeStrings(digest, inputs)
	return strconv.FormatUint(digest.Sum64(), 16)
}

func writeStrings(digest *xxhash.Digest, values []string) {
	var length [8]byte
	for _, v := range values {
		binary.LittleEndian.PutUint64(length[:], uint64(len(v)))
		_, _ = digest.Write(length[:])
		_, _ = digest.WriteString(v)
	}
}

func sortedEnv(env map[string]string) []string {
	pairs := make([]string, 0, len(env))
	for k, v := range env {
		pairs = append(pairs, k+"="+v)
	}
	slices.Sort(pairs)
	return pairs
}

func newestMtime(paths []string) (time.Time, error) {
	var newest time.Time
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return time.Time{}, zerr.Wrap(err, "stating gate input")
		}
		if info.ModTime().After(newest) {
			newest = info.ModTime()
		}
	}
	return newest, nil
}

func oldestMtime(paths []string) (time.Time, error) {
	var oldest time.Time
	for i, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return time.Time{}, zerr.Wrap(err, "stating gate output")
		}
		if i == 0 || info.ModTime().Before(oldest) {
			oldest = info.ModTime()
		}
	}
	return oldest, nil
}
