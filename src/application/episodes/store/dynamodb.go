package store

import (
	"context"
	"errors"
	"freecast-workers/src/application/episodes/entity"
	"freecast-workers/src/lib/cerr"
	"freecast-workers/src/lib/env"
	"strconv"

	"github.com/apex/log"
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbattribute"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbiface"
)

const (
	DefaultTableName = "EpisodeChunks"
	DefaultRegion    = "us-east-2"

	idField      = "episode_guid"
	versionField = "version"

	versionValueName = ":version"

	maxUpdateAttempts = 10
)

var _ entity.EpisodeStore = DynamoDBEpisodeStore{}

// episodeItem is the stored shape of an episode. Version guards
// read-modify-write cycles against concurrent workers.
type episodeItem struct {
	GUID              string               `dynamodbav:"episode_guid"`
	AudioURL          string               `dynamodbav:"audio_url,omitempty"`
	JobStatus         string               `dynamodbav:"job_status,omitempty"`
	JobStatusMessage  string               `dynamodbav:"job_status_message,omitempty"`
	JobStatusDebugLog string               `dynamodbav:"job_status_debug_log,omitempty"`
	JobProgress       int                  `dynamodbav:"job_progress"`
	Chunks            []entity.ChunkRecord `dynamodbav:"chunks"`
	Version           int64                `dynamodbav:"version"`
}

func NewDynamoDBEpisodeStore(environment env.Environment, region string, tableName string) DynamoDBEpisodeStore {
	if region == "" {
		region = DefaultRegion
	}

	dbSession := session.Must(session.NewSession())

	config := aws.NewConfig().WithRegion(region).WithCredentials(credentials.NewEnvCredentials())

	if environment == env.Development {
		config = config.WithEndpoint("http://localhost:8000")
	}

	return NewDynamoDBEpisodeStoreWithClient(dynamodb.New(dbSession, config), tableName)
}

func NewDynamoDBEpisodeStoreWithClient(client dynamodbiface.DynamoDBAPI, tableName string) DynamoDBEpisodeStore {
	if tableName == "" {
		tableName = DefaultTableName
	}

	return DynamoDBEpisodeStore{
		dynamoDBClient: client,
		tableName:      tableName,
	}
}

type DynamoDBEpisodeStore struct {
	dynamoDBClient dynamodbiface.DynamoDBAPI
	tableName      string
}

func (d DynamoDBEpisodeStore) UpdateEpisode(ctx context.Context, guid string, updater entity.EpisodeUpdater) error {
	var err error
	for i := 0; i < maxUpdateAttempts; i++ {
		err = d.updateEpisode(ctx, guid, updater)
		if !isConditionalCheckFailure(err) {
			return err
		}

		log.WithFields(log.Fields{
			"episode_guid": guid,
			"attempt":      i + 1,
		}).Info("Episode changed during update, retrying")
	}

	return cerr.Field("episode_guid", guid).Wrap(err).Error("Gave up updating episode after repeated conflicts")
}

func (d DynamoDBEpisodeStore) updateEpisode(ctx context.Context, guid string, updater entity.EpisodeUpdater) error {
	errctx := cerr.Field("episode_guid", guid)

	item, found, err := d.getItem(ctx, guid)
	if err != nil {
		return err
	}

	current := entity.Episode{GUID: guid}
	if found {
		current = episodeFromItem(item)
	}

	updated, err := updater(current)
	if err != nil {
		return errctx.Wrap(err).Error("Failed to apply episode update")
	}

	newItem := itemFromEpisode(updated)
	newItem.GUID = guid
	newItem.Version = item.Version + 1

	attributes, err := dynamodbattribute.MarshalMap(newItem)
	if err != nil {
		return errctx.Wrap(err).Error("Failed to marshal episode for DynamoDB")
	}

	input := &dynamodb.PutItemInput{
		Item:      attributes,
		TableName: aws.String(d.tableName),
	}

	if found {
		input.ConditionExpression = aws.String(versionField + " = " + versionValueName)
		input.ExpressionAttributeValues = map[string]*dynamodb.AttributeValue{
			versionValueName: {N: aws.String(strconv.FormatInt(item.Version, 10))},
		}
	} else {
		input.ConditionExpression = aws.String("attribute_not_exists(" + idField + ")")
	}

	if _, err = d.dynamoDBClient.PutItemWithContext(ctx, input); err != nil {
		return errctx.Wrap(err).Error("Failed to put episode item into DynamoDB")
	}

	return nil
}

func (d DynamoDBEpisodeStore) getItem(ctx context.Context, guid string) (episodeItem, bool, error) {
	output, err := d.dynamoDBClient.GetItemWithContext(ctx, &dynamodb.GetItemInput{
		ConsistentRead: aws.Bool(true),
		Key:            makeKey(guid),
		TableName:      aws.String(d.tableName),
	})
	if err != nil {
		return episodeItem{}, false, cerr.Field("episode_guid", guid).Wrap(err).Error("Failed to get episode from DynamoDB")
	}

	if len(output.Item) == 0 {
		return episodeItem{}, false, nil
	}

	item := episodeItem{}
	if err := dynamodbattribute.UnmarshalMap(output.Item, &item); err != nil {
		return episodeItem{}, false, cerr.Field("episode_guid", guid).Wrap(err).Error("Failed to unmarshal episode item")
	}

	return item, true, nil
}

func episodeFromItem(item episodeItem) entity.Episode {
	return entity.Episode{
		GUID:              item.GUID,
		AudioURL:          item.AudioURL,
		JobStatus:         entity.JobStatus(item.JobStatus),
		JobStatusMessage:  item.JobStatusMessage,
		JobStatusDebugLog: item.JobStatusDebugLog,
		JobProgress:       item.JobProgress,
		Chunks:            item.Chunks,
	}
}

func itemFromEpisode(episode entity.Episode) episodeItem {
	return episodeItem{
		GUID:              episode.GUID,
		AudioURL:          episode.AudioURL,
		JobStatus:         string(episode.JobStatus),
		JobStatusMessage:  episode.JobStatusMessage,
		JobStatusDebugLog: episode.JobStatusDebugLog,
		JobProgress:       episode.JobProgress,
		Chunks:            episode.Chunks,
	}
}

func isConditionalCheckFailure(err error) bool {
	var awsErr awserr.Error
	if !errors.As(err, &awsErr) {
		return false
	}

	return awsErr.Code() == dynamodb.ErrCodeConditionalCheckFailedException
}

func makeKey(guid string) map[string]*dynamodb.AttributeValue {
	attributeValue := dynamodb.AttributeValue{}
	attributeValue.SetS(guid)
	return map[string]*dynamodb.AttributeValue{
		idField: &attributeValue,
	}
}
