//go:build !ocr

package ocr

import (
	"context"
	"errors"
	"testing"
)

func TestNewReturnsError(t *testing.T) {
	client, err := New(DefaultConfig())
	if err == nil {
		t.Error("Expected error from New() when OCR is disabled")
	}
	if !errors.Is(err, ErrOCRNotEnabled) {
		t.Errorf("Expected ErrOCRNotEnabled, got: %v", err)
	}
	if client != nil {
		t.Error("Expected nil client when OCR is disabled")
	}
}

func TestNewSourceReturnsError(t *testing.T) {
	src, err := NewSource([]string{"page-1.png"}, DefaultConfig())
	if !errors.Is(err, ErrOCRNotEnabled) {
		t.Errorf("Expected ErrOCRNotEnabled, got: %v", err)
	}
	if src != nil {
		t.Error("Expected nil source when OCR is disabled")
	}
}

func TestStubSourceOperationsReturnError(t *testing.T) {
	var src *Source
	if err := src.Close(); err != nil {
		t.Errorf("Close on nil source should not error: %v", err)
	}

	s := &Source{}
	if _, err := s.PageCount(); !errors.Is(err, ErrOCRNotEnabled) {
		t.Errorf("PageCount: expected ErrOCRNotEnabled, got: %v", err)
	}
	if _, err := s.PageGeometry(context.Background(), 1); !errors.Is(err, ErrOCRNotEnabled) {
		t.Errorf("PageGeometry: expected ErrOCRNotEnabled, got: %v", err)
	}
}

func TestCloseOnNilClient(t *testing.T) {
	var client *Client
	if err := client.Close(); err != nil {
		t.Errorf("Close on nil client should not error: %v", err)
	}
}
