// SPDX-License-Identifier: MIT
// Copyright (c) 2026 ArkTools
// Source: github.com/arktools/metacb

/*
Package metacb packages song resource bundles and verifies their
integrity through a content-addressed manifest (meta.cb). A bundle is an
"active folder": a directory holding songs/songlist, songs/packlist,
songs/unlocks, per-song asset folders, and optional img/ assets. The
manifest records every packaged file's path, running byte offset,
length, and base64 SHA-256 hash, plus keyed HMAC-SHA-256 integrity tags
for the three list files.

# Packaging

Validate the active folder, then generate a manifest:

	result := metacb.ValidateActiveFolder(root, metacb.ValidateOptions{})
	if !result.IsValid() {
	    return fmt.Errorf("active folder not packagable: %v", result.Errors)
	}
	manifest, err := metacb.Generate(root, filepath.Join(root, metacb.DefaultManifestName), metacb.GenerateOptions{
	    BundleVersion: "2.4.0",
	    AppVersion:    "1.9.3",
	})
	if err != nil {
	    return err
	}
	_ = manifest

Collection order is deterministic: paths are sorted lexicographically,
so an unchanged tree always yields the same entry order and offsets.
Files matching "*.oldjson" (rotated list backups) are never packaged.

# Verification

Re-derive every hash from an existing manifest and directory:

	result := metacb.Verify(manifestPath, root, metacb.VerifyOptions{})
	for _, e := range result.Errors {
	    fmt.Println(e)
	}
	fmt.Printf("verified %d/%d\n", result.Verified, result.Total)

Verification checks all entries even after failures and reports
aggregate counts; only a missing manifest, missing root, or unparsable
document stops the pass early.

# List files

LoadLists and SaveLists move the song, pack, and unlock collections
between memory and the active folder. SaveLists rotates previous
content to "<name>.oldjson" so a bad edit can be recovered by hand.
*/
package metacb
