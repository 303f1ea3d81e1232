package controllers

import (
	"context"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/campus-voice/api-go/complaints"
	"github.com/campus-voice/api-go/config"
	"github.com/campus-voice/api-go/models"
	"github.com/campus-voice/api-go/realtime"
	"github.com/campus-voice/api-go/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// UploadController implements the two-phase attachment flow: the complaint
// row is created first, files are then uploaded straight to the bucket via
// presigned URLs, and the resulting public URLs are written back onto the
// complaint in a second update.
type UploadController struct {
	DB       *gorm.DB
	R2Client *s3.Client
	R2Config *config.R2Config
	Broker   *realtime.Broker
}

const (
	maxAttachmentSize  = 50 * 1024 * 1024 // per file
	maxAttachmentCount = 5
)

type AttachmentPresignRequest struct {
	ComplaintID string `json:"complaintId" binding:"required"`
	FileName    string `json:"fileName" binding:"required"`
	ContentType string `json:"contentType" binding:"required"`
	FileSize    int64  `json:"fileSize" binding:"required"`
}

type AttachmentPresignResponse struct {
	UploadURL string `json:"uploadUrl"`
	FileURL   string `json:"fileUrl"`
	Key       string `json:"key"`
	ExpiresIn int    `json:"expiresIn"`
}

type AttachRequest struct {
	ComplaintID string   `json:"complaintId" binding:"required"`
	Keys        []string `json:"keys" binding:"required"`
}

func NewUploadController(db *gorm.DB, broker *realtime.Broker) *UploadController {
	r2Config := config.GetR2Config()

	r2Client := s3.New(s3.Options{
		BaseEndpoint: aws.String(fmt.Sprintf("https://%s.r2.cloudflarestorage.com", r2Config.AccountID)),
		Credentials: credentials.NewStaticCredentialsProvider(
			r2Config.AccessKeyID,
			r2Config.SecretAccessKey,
			"",
		),
		Region: r2Config.Region,
	})

	return &UploadController{
		DB:       db,
		R2Client: r2Client,
		R2Config: r2Config,
		Broker:   broker,
	}
}

// GetPresignedURL hands the owning student a one-hour presigned PUT for one
// attachment. The complaint row must already exist.
func (uc *UploadController) GetPresignedURL(c *gin.Context) {
	user := utils.GetUser(c)
	var req AttachmentPresignRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !uc.isValidAttachmentType(req.ContentType) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid attachment type"})
		return
	}
	if req.FileSize <= 0 || req.FileSize > maxAttachmentSize {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File size exceeds limit"})
		return
	}

	complaint, ok := uc.ownedComplaint(c, user, req.ComplaintID)
	if !ok {
		return
	}
	if len(complaint.Attachments) >= maxAttachmentCount {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Maximum %d attachments allowed per complaint", maxAttachmentCount)})
		return
	}

	key := uc.generateAttachmentKey(user.UserID, complaint.ID, req.FileName)

	presignedURL, err := uc.createPresignedURL(key, req.ContentType)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create upload URL"})
		return
	}

	c.JSON(http.StatusOK, StandardResponse{
		Success: true,
		Data: AttachmentPresignResponse{
			UploadURL: presignedURL,
			FileURL:   fmt.Sprintf("%s/%s", uc.R2Config.PublicURL, key),
			Key:       key,
			ExpiresIn: 3600,
		},
		Message: "Presigned URL generated successfully",
	})
}

// AttachFiles writes the uploaded objects' public URLs onto the complaint.
// Every key must exist in the bucket and belong to this caller and
// complaint. If verification fails mid-list the complaint keeps its previous
// attachment set and already-uploaded objects stay orphaned in the bucket;
// there is no compensating delete.
func (uc *UploadController) AttachFiles(c *gin.Context) {
	user := utils.GetUser(c)
	var req AttachRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if len(req.Keys) == 0 || len(req.Keys) > maxAttachmentCount {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Between 1 and %d attachment keys required", maxAttachmentCount)})
		return
	}

	complaint, ok := uc.ownedComplaint(c, user, req.ComplaintID)
	if !ok {
		return
	}

	urls := make([]string, 0, len(req.Keys))
	for _, key := range req.Keys {
		if !uc.verifyKeyOwnership(key, user.UserID, complaint.ID) {
			c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
			return
		}
		exists, err := uc.verifyFileExists(key)
		if err != nil || !exists {
			c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("File not found in storage: %s", key)})
			return
		}
		urls = append(urls, fmt.Sprintf("%s/%s", uc.R2Config.PublicURL, key))
	}

	attachments := append([]string(complaint.Attachments), urls...)
	if len(attachments) > maxAttachmentCount {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Maximum %d attachments allowed per complaint", maxAttachmentCount)})
		return
	}

	if err := uc.DB.Model(complaint).
		Update("attachments", pq.StringArray(attachments)).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to attach files"})
		return
	}

	uc.Broker.Publish(c.Request.Context(), realtime.ChangeEvent{
		Entity:   realtime.EntityComplaint,
		EntityID: complaint.ID,
		Kind:     realtime.KindCreated,
	})

	c.JSON(http.StatusOK, StandardResponse{
		Success: true,
		Data:    gin.H{"attachments": attachments},
		Message: "Attachments saved successfully",
	})
}

func (uc *UploadController) ownedComplaint(c *gin.Context, user *utils.UserClaims, complaintID string) (*models.Complaint, bool) {
	actor, err := complaints.LoadActor(uc.DB, user.UserID)
	if err != nil || actor.Role != models.RoleStudent {
		c.JSON(http.StatusForbidden, gin.H{"error": "Only students can upload attachments"})
		return nil, false
	}

	var complaint models.Complaint
	if err := uc.DB.First(&complaint, "id = ?", complaintID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Complaint not found"})
		return nil, false
	}
	if complaint.StudentID != user.UserID {
		c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
		return nil, false
	}
	return &complaint, true
}

// Helper functions
func (uc *UploadController) isValidAttachmentType(contentType string) bool {
	if strings.HasPrefix(contentType, "image/") || strings.HasPrefix(contentType, "video/") {
		return true
	}
	return contentType == "application/pdf"
}

func (uc *UploadController) generateAttachmentKey(userID uint, complaintID, fileName string) string {
	ext := filepath.Ext(fileName)
	id := uuid.New().String()
	timestamp := time.Now().Unix()

	return fmt.Sprintf("attachments/%d/%s/%d_%s%s", userID, complaintID, timestamp, id, ext)
}

// verifyKeyOwnership checks the key against its namespace:
// attachments/{userID}/{complaintID}/{timestamp}_{uuid}.{ext}
func (uc *UploadController) verifyKeyOwnership(key string, userID uint, complaintID string) bool {
	prefix := fmt.Sprintf("attachments/%d/%s/", userID, complaintID)
	return strings.HasPrefix(key, prefix)
}

func (uc *UploadController) createPresignedURL(key, contentType string) (string, error) {
	input := &s3.PutObjectInput{
		Bucket:      aws.String(uc.R2Config.BucketName),
		Key:         aws.String(key),
		ContentType: aws.String(contentType),
	}

	presigner := s3.NewPresignClient(uc.R2Client)
	req, err := presigner.PresignPutObject(context.TODO(), input, func(opts *s3.PresignOptions) {
		opts.Expires = time.Hour
	})

	if err != nil {
		return "", err
	}

	return req.URL, nil
}

func (uc *UploadController) verifyFileExists(key string) (bool, error) {
	input := &s3.HeadObjectInput{
		Bucket: aws.String(uc.R2Config.BucketName),
		Key:    aws.String(key),
	}

	_, err := uc.R2Client.HeadObject(context.TODO(), input)
	if err != nil {
		return false, nil
	}

	return true, nil
}
