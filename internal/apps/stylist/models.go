package stylist

import (
	"time"
)

type SkinTone string

const (
	SkinToneLight  SkinTone = "light"
	SkinToneMedium SkinTone = "medium"
	SkinToneTan    SkinTone = "tan"
	SkinToneDeep   SkinTone = "deep"
)

type Undertone string

const (
	UndertoneCool    Undertone = "cool"
	UndertoneWarm    Undertone = "warm"
	UndertoneNeutral Undertone = "neutral"
)

type FaceShape string

const (
	FaceShapeOval    FaceShape = "oval"
	FaceShapeRound   FaceShape = "round"
	FaceShapeSquare  FaceShape = "square"
	FaceShapeHeart   FaceShape = "heart"
	FaceShapeLong    FaceShape = "long"
	FaceShapeDiamond FaceShape = "diamond"
)

type MakeupCategory string

const (
	CategoryFoundation MakeupCategory = "foundation"
	CategoryLipstick   MakeupCategory = "lipstick"
	CategoryBlush      MakeupCategory = "blush"
	CategoryEyeshadow  MakeupCategory = "eyeshadow"
)

type Occasion string

const (
	OccasionCasual    Occasion = "casual"
	OccasionParty     Occasion = "party"
	OccasionFormal    Occasion = "formal"
	OccasionInterview Occasion = "interview"
	OccasionWedding   Occasion = "wedding"
)

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Analysis is the feature vector derived from one uploaded photo.
type Analysis struct {
	ID           string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	ImageData    string    `gorm:"type:text" json:"imageData,omitempty"`
	SkinTone     SkinTone  `gorm:"type:varchar(16);not null" json:"skinTone"`
	Undertone    Undertone `gorm:"type:varchar(16);not null" json:"undertone"`
	FaceShape    FaceShape `gorm:"type:varchar(16);not null" json:"faceShape"`
	HairColor    string    `gorm:"type:varchar(100);not null" json:"hairColor"`
	EyeColor     string    `gorm:"type:varchar(100);not null" json:"eyeColor"`
	Confidence   float64   `gorm:"not null;check:confidence >= 0 AND confidence <= 1" json:"confidence"`
	ColorPalette []string  `gorm:"type:jsonb;serializer:json" json:"colorPalette"`
	Timestamp    time.Time `gorm:"not null;index" json:"timestamp"`
}

func (Analysis) TableName() string {
	return "analyses"
}

type MakeupShade struct {
	Name   string `json:"name"`
	Hex    string `json:"hex"`
	Finish string `json:"finish,omitempty"`
	Brand  string `json:"brand,omitempty"`
}

type MakeupRecommendation struct {
	ID         string         `gorm:"type:varchar(36);primaryKey" json:"id"`
	AnalysisID string         `gorm:"type:varchar(36);not null;index" json:"analysisId"`
	Position   int            `gorm:"not null;default:0" json:"-"`
	Category   MakeupCategory `gorm:"type:varchar(20);not null" json:"category"`
	Shades     []MakeupShade  `gorm:"type:jsonb;serializer:json" json:"shades"`
}

func (MakeupRecommendation) TableName() string {
	return "makeup_recommendations"
}

type OutfitRecommendation struct {
	ID          string   `gorm:"type:varchar(36);primaryKey" json:"id"`
	AnalysisID  string   `gorm:"type:varchar(36);not null;index" json:"analysisId"`
	Position    int      `gorm:"not null;default:0" json:"-"`
	Occasion    Occasion `gorm:"type:varchar(20);not null" json:"occasion"`
	Colors      []string `gorm:"type:jsonb;serializer:json" json:"colors"`
	Styles      []string `gorm:"type:jsonb;serializer:json" json:"styles"`
	Description string   `gorm:"type:text" json:"description"`
}

func (OutfitRecommendation) TableName() string {
	return "outfit_recommendations"
}

// UserProfile is a read-time projection; nothing about it is stored.
type UserProfile struct {
	Analyses      []Analysis `json:"analyses"`
	SavedPalettes [][]string `json:"savedPalettes"`
}

type ChatMessage struct {
	ID        string    `json:"id"`
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// FeatureVector is the raw analyzer output before validation.
type FeatureVector struct {
	SkinTone   string  `json:"skinTone"`
	Undertone  string  `json:"undertone"`
	FaceShape  string  `json:"faceShape"`
	HairColor  string  `json:"hairColor"`
	EyeColor   string  `json:"eyeColor"`
	Confidence float64 `json:"confidence"`
}

// StyleContext grounds a chat reply in the latest analysis.
type StyleContext struct {
	SkinTone  SkinTone
	Undertone Undertone
	FaceShape FaceShape
}

// --- DTOs ---

type AnalyzeRequest struct {
	ImageData string `json:"imageData"`
}

type ChatRequest struct {
	Content string `json:"content"`
}
