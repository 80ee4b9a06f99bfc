package storage

import (
	"context"
	"errors"
)

// Chaves lógicas dos blobs persistidos. Espelham as chaves do app
// original para permitir migração do dump.
const (
	KeyDataset = "barbearia_dados"
	KeyConfig  = "barbearia_config"
	KeySecret  = "admin_password"
	KeyGallery = "barbearia_galeria"
)

var ErrNotFound = errors.New("blob not found")

// KV é o adaptador de persistência: leitura/escrita de blobs JSON por
// chave. Leitura distingue ausência (found=false) de falha de leitura
// (err != nil); escrita que falha propaga o erro ao chamador.
type KV interface {
	Read(ctx context.Context, key string) (blob []byte, found bool, err error)
	Write(ctx context.Context, key string, blob []byte) error
}
