// Package patternlib keeps named name-generation patterns and caches their
// compiled trees.
//
// A Library starts with the namegen presets and can be extended in code with
// Register or from YAML files with Load and LoadFile. Compile, Generator and
// Resolve share one LRU cache keyed by pattern text, so a pattern used by
// many requests is parsed once.
//
//	lib := patternlib.New(patternlib.WithCompileOptions(namegen.WithMaxDepth(64)))
//	if _, err := lib.LoadFile(ctx, "patterns.yaml"); err != nil {
//		return err
//	}
//	g, err := lib.Resolve("elf-lord")
package patternlib
