package service

import "leadgrid/internal/domain/entity"

// BusinessExporter renders businesses into a downloadable document.
type BusinessExporter interface {
	Export(businesses []*entity.Business) ([]byte, error)
	ContentType() string
	FileExtension() string
}
