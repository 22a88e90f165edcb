// audit/repository.go
package audit

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
)

type Repository interface {
	LogAccess(ctx context.Context, log AuditLog) error
	QueryLogs(ctx context.Context, from, to time.Time, userID int64, entityType string, entityID int64) ([]AuditLog, error)
}

type ElasticsearchRepository struct {
	esClient *elasticsearch.Client
	index    string
}

// NewElasticsearchRepository creates a repository writing to index on the
// cluster at esURL.
func NewElasticsearchRepository(esURL, index string) (*ElasticsearchRepository, error) {
	esClient, err := elasticsearch.NewClient(elasticsearch.Config{
		Addresses: []string{esURL},
	})
	if err != nil {
		return nil, err
	}
	return &ElasticsearchRepository{esClient: esClient, index: index}, nil
}

func (r *ElasticsearchRepository) LogAccess(ctx context.Context, log AuditLog) error {
	data, err := json.Marshal(log)
	if err != nil {
		return err
	}

	req := esapi.IndexRequest{
		Index:      r.index,
		DocumentID: log.ID,
		Body:       bytes.NewReader(data),
	}

	res, err := req.Do(ctx, r.esClient)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("error indexing document: %s", res.String())
	}
	return nil
}

type searchResponse struct {
	Hits struct {
		Hits []struct {
			Source AuditLog `json:"_source"`
		} `json:"hits"`
	} `json:"hits"`
}

// maxQueryResults bounds a single QueryLogs page.
const maxQueryResults = 100

// QueryLogs returns the entries in [from, to], newest first. A zero userID,
// empty entityType or zero entityID does not filter.
func (r *ElasticsearchRepository) QueryLogs(ctx context.Context, from, to time.Time, userID int64, entityType string, entityID int64) ([]AuditLog, error) {
	must := []map[string]any{
		{"range": map[string]any{
			"timestamp": map[string]any{
				"gte": from.Format(time.RFC3339),
				"lte": to.Format(time.RFC3339),
			},
		}},
	}
	if userID != 0 {
		must = append(must, map[string]any{"term": map[string]any{"user_id": userID}})
	}
	if entityType != "" {
		must = append(must, map[string]any{"term": map[string]any{"entity_type": entityType}})
	}
	if entityID != 0 {
		must = append(must, map[string]any{"term": map[string]any{"entity_id": entityID}})
	}
	query := map[string]any{
		"query": map[string]any{"bool": map[string]any{"must": must}},
		"sort":  []map[string]any{{"timestamp": map[string]any{"order": "desc"}}},
		"size":  maxQueryResults,
	}

	var buf strings.Builder
	if err := json.NewEncoder(&buf).Encode(query); err != nil {
		return nil, err
	}

	res, err := r.esClient.Search(
		r.esClient.Search.WithContext(ctx),
		r.esClient.Search.WithIndex(r.index),
		r.esClient.Search.WithBody(strings.NewReader(buf.String())),
	)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.IsError() {
		return nil, fmt.Errorf("error searching documents: %s", res.String())
	}

	var parsed searchResponse
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, err
	}

	logs := make([]AuditLog, 0, len(parsed.Hits.Hits))
	for _, hit := range parsed.Hits.Hits {
		logs = append(logs, hit.Source)
	}
	return logs, nil
}
