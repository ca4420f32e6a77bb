package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"medlocator/internal/usecase"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
)

// snapshot is the seed file layout. Inventory rows point at clinics through
// the clinic's ref, since store IDs are only known after insertion.
type snapshot struct {
	Clinics   []snapshotClinic    `json:"clinics"`
	Inventory []snapshotInventory `json:"inventory"`
}

type snapshotClinic struct {
	Ref string `json:"ref"`
	usecase.CreateClinicInput
}

type snapshotInventory struct {
	ClinicRef string `json:"clinic_ref"`
	usecase.AddInventoryItemInput
}

type seedOptions struct {
	source string
	key    string
}

func newSeedCmd(root *rootOptions) *cobra.Command {
	opts := &seedOptions{}

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load clinics and inventory from a JSON snapshot in a bucket",
		Example: "  medctl seed --source file:///var/seed --key clinics.json\n" +
			"  medctl seed --source gs://my-bucket --key seed/clinics.json",
		RunE: func(cmd *cobra.Command, _ []string) error {
			snap, err := loadSnapshot(cmd.Context(), opts.source, opts.key)
			if err != nil {
				return err
			}

			return withComponents(cmd.Context(), root, func(c *components) error {
				ids, err := applySnapshot(cmd.Context(), c.Clinics, c.Inventory, snap)
				if err != nil {
					return err
				}

				return printSeedSummary(cmd.OutOrStdout(), snap, ids)
			})
		},
	}
	cmd.Flags().StringVar(&opts.source, "source", "", "Bucket URL (file:// or gs://)")
	cmd.Flags().StringVar(&opts.key, "key", "seed.json", "Object key of the snapshot within the bucket")
	_ = cmd.MarkFlagRequired("source")

	return cmd
}

// loadSnapshot reads and validates a snapshot object from any gocloud bucket URL.
func loadSnapshot(ctx context.Context, bucketURL, key string) (*snapshot, error) {
	bucket, err := blob.OpenBucket(ctx, bucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", bucketURL)
	}
	defer bucket.Close()

	data, err := bucket.ReadAll(ctx, key)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read %s", key)
	}

	return parseSnapshot(data)
}

func parseSnapshot(data []byte) (*snapshot, error) {
	var snap snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, errors.Wrap(err, "snapshot is not valid JSON")
	}

	refs := make(map[string]struct{}, len(snap.Clinics))
	for i, c := range snap.Clinics {
		ref := strings.TrimSpace(c.Ref)
		if ref == "" {
			return nil, errors.Errorf("clinic #%d has no ref", i)
		}
		if _, dup := refs[ref]; dup {
			return nil, errors.Errorf("clinic ref %q is used twice", ref)
		}
		refs[ref] = struct{}{}
		snap.Clinics[i].Ref = ref
	}

	for i, item := range snap.Inventory {
		ref := strings.TrimSpace(item.ClinicRef)
		if _, ok := refs[ref]; !ok {
			return nil, errors.Errorf("inventory #%d references unknown clinic %q", i, item.ClinicRef)
		}
		snap.Inventory[i].ClinicRef = ref
	}

	return &snap, nil
}

// applySnapshot creates clinics first, then their inventory, and returns the
// store ID assigned to each clinic ref.
func applySnapshot(ctx context.Context, clinics usecase.ClinicUsecase, inventory usecase.InventoryUsecase, snap *snapshot) (map[string]string, error) {
	ids := make(map[string]string, len(snap.Clinics))
	for _, c := range snap.Clinics {
		input := c.CreateClinicInput
		clinic, err := clinics.CreateClinic(ctx, &input)
		if err != nil {
			return ids, errors.Wrapf(err, "failed to seed clinic %q", c.Ref)
		}
		ids[c.Ref] = clinic.ID
	}

	for i, item := range snap.Inventory {
		input := item.AddInventoryItemInput
		if _, err := inventory.AddInventoryItem(ctx, ids[item.ClinicRef], &input); err != nil {
			return ids, errors.Wrapf(err, "failed to seed inventory #%d", i)
		}
	}

	return ids, nil
}

func printSeedSummary(w io.Writer, snap *snapshot, ids map[string]string) error {
	for _, c := range snap.Clinics {
		if _, err := fmt.Fprintf(w, "%s\t%s\n", c.Ref, ids[c.Ref]); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "Seeded %d clinics and %d inventory items\n", len(snap.Clinics), len(snap.Inventory))

	return err
}
