package db

import (
	"context"
	"fmt"

	"ariga.io/atlas-go-sdk/atlasexec"
)

// ApplySchema pushes migrations/schema.sql to the target database through the
// atlas CLI. DevURL is the scratch database atlas uses to compute the diff.
func ApplySchema(ctx context.Context, dsn, devURL string) error {
	client, err := atlasexec.NewClient(".", "atlas")
	if err != nil {
		return fmt.Errorf("failed to init atlas client: %w", err)
	}

	_, err = client.SchemaApply(ctx, &atlasexec.SchemaApplyParams{
		URL:         dsn,
		To:          "file://migrations/schema.sql",
		DevURL:      devURL,
		AutoApprove: true,
	})
	if err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}
	return nil
}
