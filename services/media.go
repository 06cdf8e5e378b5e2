package services

import (
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"sync"

	"main/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/gridfs"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MediaStore keeps photo/video blobs in a GridFS bucket. Daily logs only
// hold the returned URL strings; the bytes live here.
type MediaStore struct {
	Bucket *gridfs.Bucket
}

func NewMediaStore(db *mongo.Database) (*MediaStore, error) {
	bucket, err := gridfs.NewBucket(db, options.GridFSBucket().SetName("media"))
	if err != nil {
		return nil, fmt.Errorf("failed to create media bucket: %w", err)
	}
	return &MediaStore{Bucket: bucket}, nil
}

// UploadAll stores every file in its own goroutine, the way the uploads were
// fired from the browser: no queueing, no throttling, no rollback. Files
// that fail are dropped from the result; the caller only learns how many
// were lost, not which.
func (s *MediaStore) UploadAll(userID, date, kind string, files []*multipart.FileHeader) (urls []string, failed int) {
	var (
		wg sync.WaitGroup
		mu sync.Mutex
	)

	for _, fh := range files {
		wg.Add(1)
		go func(fh *multipart.FileHeader) {
			defer wg.Done()

			url, err := s.uploadOne(userID, date, kind, fh)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				log.Printf("Error uploading %s %q for %s/%s: %v", kind, fh.Filename, userID, date, err)
				utils.TrackMediaUpload(kind, "failure")
				failed++
				return
			}
			utils.TrackMediaUpload(kind, "success")
			urls = append(urls, url)
		}(fh)
	}

	wg.Wait()
	return urls, failed
}

func (s *MediaStore) uploadOne(userID, date, kind string, fh *multipart.FileHeader) (string, error) {
	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open upload: %w", err)
	}
	defer src.Close()

	name := uuid.New().String() + "-" + fh.Filename
	opts := options.GridFSUpload().SetMetadata(bson.M{
		"user_id":      userID,
		"date":         date,
		"kind":         kind,
		"content_type": fh.Header.Get("Content-Type"),
	})

	fileID, err := s.Bucket.UploadFromStream(name, src, opts)
	if err != nil {
		return "", fmt.Errorf("failed to store blob: %w", err)
	}

	return "/api/media/" + fileID.Hex(), nil
}

// MediaBlob is an open download stream plus the metadata needed for response
// headers. The caller must Close it.
type MediaBlob struct {
	Name        string
	ContentType string
	Length      int64
	io.ReadCloser
}

// Open returns a stored blob ready for streaming.
func (s *MediaStore) Open(id string) (*MediaBlob, error) {
	fileID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("invalid media id: %w", err)
	}

	stream, err := s.Bucket.OpenDownloadStream(fileID)
	if err != nil {
		return nil, err
	}

	file := stream.GetFile()
	contentType := ""
	if file.Metadata != nil {
		var meta struct {
			ContentType string `bson:"content_type"`
		}
		if err := bson.Unmarshal(file.Metadata, &meta); err == nil {
			contentType = meta.ContentType
		}
	}

	return &MediaBlob{
		Name:        file.Name,
		ContentType: contentType,
		Length:      file.Length,
		ReadCloser:  stream,
	}, nil
}

// Delete removes a blob by its hex id.
func (s *MediaStore) Delete(id string) error {
	fileID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("invalid media id: %w", err)
	}
	return s.Bucket.Delete(fileID)
}
