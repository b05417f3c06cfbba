// Package dynamo implements the domain repositories on DynamoDB.
//
// The tables have no query-friendly key layout beyond the primary id, so
// per-user listings are filtered scans. Acceptable at this data volume.
package dynamo

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// Tables holds the resolved table names for one deployment.
type Tables struct {
	Users            string
	Jobs             string
	BaseResumes      string
	Analysis         string
	GeneratedResumes string
	Tracking         string
}

// TablesFromPrefix derives the conventional table names. The tracking
// table predates the prefix convention and keeps its historical name.
func TablesFromPrefix(prefix string) Tables {
	return Tables{
		Users:            prefix + "-users",
		Jobs:             prefix + "-jobs",
		BaseResumes:      prefix + "-base-resumes",
		Analysis:         prefix + "-analysis",
		GeneratedResumes: prefix + "-generated-resumes",
		Tracking:         "application_tracking",
	}
}

// Client bundles the DynamoDB connection with the table layout shared by
// every repository.
type Client struct {
	db     *dynamodb.Client
	tables Tables
}

func NewClient(db *dynamodb.Client, tables Tables) *Client {
	return &Client{db: db, tables: tables}
}

// Ping verifies connectivity by describing the users table.
func (c *Client) Ping(ctx context.Context) error {
	_, err := c.db.DescribeTable(ctx, &dynamodb.DescribeTableInput{
		TableName: aws.String(c.tables.Users),
	})
	if err != nil {
		return fmt.Errorf("describe table %s: %w", c.tables.Users, err)
	}
	return nil
}
