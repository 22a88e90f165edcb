// db/graph.go
package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"go.uber.org/zap"

	"github.com/dev-mohitbeniwal/eventdesk/config"
	ed_errors "github.com/dev-mohitbeniwal/eventdesk/errors"
	logger "github.com/dev-mohitbeniwal/eventdesk/logging"
)

// Tx runs statements inside one open transaction. Results are fully
// collected before Run returns.
type Tx interface {
	Run(ctx context.Context, cypher string, params map[string]any) ([]*neo4j.Record, error)
}

// TxWork is a unit of work executed inside a single transaction.
type TxWork func(ctx context.Context, tx Tx) (any, error)

// Graph opens one session per call and runs the work in exactly one
// transaction. There is no retry: a failed commit or a failed statement is
// returned to the caller as is.
type Graph interface {
	ExecuteRead(ctx context.Context, work TxWork) (any, error)
	ExecuteWrite(ctx context.Context, work TxWork) (any, error)
	VerifyConnectivity(ctx context.Context) error
	Close(ctx context.Context) error
}

type Neo4jGraph struct {
	driver   neo4j.DriverWithContext
	database string
}

var _ Graph = &Neo4jGraph{}

func NewNeo4jGraph(driver neo4j.DriverWithContext, database string) *Neo4jGraph {
	return &Neo4jGraph{driver: driver, database: database}
}

func InitNeo4j(ctx context.Context) (*Neo4jGraph, error) {
	uri := config.GetString("neo4j.uri")
	logger.Info("Connecting to Neo4j at URI", zap.String("uri", uri))
	driver, err := neo4j.NewDriverWithContext(
		uri,
		neo4j.BasicAuth(
			config.GetString("neo4j.username"),
			config.GetString("neo4j.password"),
			"",
		),
		func(c *neo4j.Config) {
			c.MaxConnectionLifetime = 30 * time.Minute
			c.MaxConnectionPoolSize = 50
			c.Log = neo4j.ConsoleLogger(neo4j.ERROR)
		},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create Neo4j driver: %w", err)
	}

	graph := NewNeo4jGraph(driver, config.GetString("neo4j.database"))

	verifyCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := graph.VerifyConnectivity(verifyCtx); err != nil {
		_ = driver.Close(ctx)
		return nil, fmt.Errorf("failed to connect to Neo4j: %w", err)
	}

	logger.Info("Successfully connected to Neo4j")
	return graph, nil
}

func (g *Neo4jGraph) VerifyConnectivity(ctx context.Context) error {
	return g.driver.VerifyConnectivity(ctx)
}

func (g *Neo4jGraph) Close(ctx context.Context) error {
	if err := g.driver.Close(ctx); err != nil {
		logger.Error("Error closing Neo4j connection", zap.Error(err))
		return err
	}
	logger.Info("Neo4j connection closed successfully")
	return nil
}

func (g *Neo4jGraph) ExecuteRead(ctx context.Context, work TxWork) (any, error) {
	return g.execute(ctx, neo4j.AccessModeRead, work)
}

func (g *Neo4jGraph) ExecuteWrite(ctx context.Context, work TxWork) (any, error) {
	return g.execute(ctx, neo4j.AccessModeWrite, work)
}

// execute uses an explicit transaction rather than the driver's managed
// ExecuteRead/ExecuteWrite, which retry transient failures.
func (g *Neo4jGraph) execute(ctx context.Context, mode neo4j.AccessMode, work TxWork) (any, error) {
	session := g.driver.NewSession(ctx, neo4j.SessionConfig{AccessMode: mode, DatabaseName: g.database})
	defer session.Close(ctx)

	tx, err := session.BeginTransaction(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: begin transaction: %v", ed_errors.ErrDatabaseOperation, err)
	}

	result, err := work(ctx, &neo4jTx{tx: tx})
	if err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			logger.Warn("Failed to roll back transaction", zap.Error(rbErr))
		}
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit: %w", StoreError(err))
	}
	return result, nil
}

type neo4jTx struct {
	tx neo4j.ExplicitTransaction
}

func (t *neo4jTx) Run(ctx context.Context, cypher string, params map[string]any) ([]*neo4j.Record, error) {
	result, err := t.tx.Run(ctx, cypher, params)
	if err != nil {
		return nil, StoreError(err)
	}
	records, err := result.Collect(ctx)
	if err != nil {
		return nil, StoreError(err)
	}
	return records, nil
}

const constraintViolationCode = "Neo.ClientError.Schema.ConstraintValidationFailed"

// StoreError classifies a driver failure. Uniqueness violations become
// ErrConstraintViolation, everything else ErrDatabaseOperation.
func StoreError(err error) error {
	var neoErr *neo4j.Neo4jError
	if errors.As(err, &neoErr) && neoErr.Code == constraintViolationCode {
		return fmt.Errorf("%w: %v", ed_errors.ErrConstraintViolation, err)
	}
	return fmt.Errorf("%w: %v", ed_errors.ErrDatabaseOperation, err)
}
