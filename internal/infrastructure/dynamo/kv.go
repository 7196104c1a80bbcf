package dynamo

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/dive-demo-tour/api/internal/domain"
)

// kvItem is the single-table row shape: a string key and an opaque JSON document.
type kvItem struct {
	K string `dynamodbav:"k"`
	V string `dynamodbav:"v"`
}

// KV is a flat key→value store over one DynamoDB table. Values are JSON
// documents; every write is a last-writer-wins overwrite of a single key.
type KV struct {
	client    *dynamodb.Client
	tableName string
}

func NewKV(client *dynamodb.Client, tableName string) *KV {
	return &KV{client: client, tableName: tableName}
}

// Get unmarshals the value stored under key into out.
// Returns domain.ErrNotFound when the key is absent.
func (s *KV) Get(ctx context.Context, key string, out interface{}) error {
	res, err := s.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.tableName),
		Key:       strKey(key),
	})
	if err != nil {
		return fmt.Errorf("kv get %q: %v: %w", key, err, domain.ErrPersistence)
	}
	if res.Item == nil {
		return fmt.Errorf("kv get %q: %w", key, domain.ErrNotFound)
	}
	var item kvItem
	if err := attributevalue.UnmarshalMap(res.Item, &item); err != nil {
		return fmt.Errorf("kv unmarshal item %q: %v: %w", key, err, domain.ErrPersistence)
	}
	if err := json.Unmarshal([]byte(item.V), out); err != nil {
		return fmt.Errorf("kv decode value %q: %v: %w", key, err, domain.ErrPersistence)
	}
	return nil
}

// Set stores value under key, overwriting any previous value.
func (s *KV) Set(ctx context.Context, key string, value interface{}) error {
	doc, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("kv encode value %q: %w", key, err)
	}
	item, err := attributevalue.MarshalMap(kvItem{K: key, V: string(doc)})
	if err != nil {
		return fmt.Errorf("kv marshal item %q: %w", key, err)
	}
	_, err = s.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.tableName),
		Item:      item,
	})
	if err != nil {
		return fmt.Errorf("kv set %q: %v: %w", key, err, domain.ErrPersistence)
	}
	return nil
}

// Del removes key. Deleting an absent key is not an error.
func (s *KV) Del(ctx context.Context, key string) error {
	_, err := s.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(s.tableName),
		Key:       strKey(key),
	})
	if err != nil {
		return fmt.Errorf("kv del %q: %v: %w", key, err, domain.ErrPersistence)
	}
	return nil
}

// MDel removes all given keys. No transaction spans them; a failure aborts
// the remaining deletes and is returned.
func (s *KV) MDel(ctx context.Context, keys []string) error {
	for _, k := range keys {
		if err := s.Del(ctx, k); err != nil {
			return err
		}
	}
	return nil
}

// GetByPrefix returns the raw JSON documents of all keys sharing the literal
// string prefix, following scan pagination. Order is scan order; callers sort.
func (s *KV) GetByPrefix(ctx context.Context, prefix string) ([]json.RawMessage, error) {
	var docs []json.RawMessage
	var startKey map[string]types.AttributeValue
	for {
		res, err := s.client.Scan(ctx, &dynamodb.ScanInput{
			TableName:        aws.String(s.tableName),
			FilterExpression: aws.String("begins_with(k, :p)"),
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":p": &types.AttributeValueMemberS{Value: prefix},
			},
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, fmt.Errorf("kv scan prefix %q: %v: %w", prefix, err, domain.ErrPersistence)
		}
		var items []kvItem
		if err := attributevalue.UnmarshalListOfMaps(res.Items, &items); err != nil {
			return nil, fmt.Errorf("kv unmarshal scan %q: %v: %w", prefix, err, domain.ErrPersistence)
		}
		for _, it := range items {
			docs = append(docs, json.RawMessage(it.V))
		}
		if res.LastEvaluatedKey == nil {
			return docs, nil
		}
		startKey = res.LastEvaluatedKey
	}
}

// strKey builds the primary key map for the KV table.
func strKey(key string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"k": &types.AttributeValueMemberS{Value: key},
	}
}
