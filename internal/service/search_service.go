package service

import (
	"encoding/json"
	"fmt"
	"log"

	"fitpro.com.br/fitnessproapi/internal/model"
	"fitpro.com.br/fitnessproapi/pkg/apperror"
	"github.com/meilisearch/meilisearch-go"
)

// TreinoDoc is the projection indexed for search.
type TreinoDoc struct {
	ID          string `json:"id"`
	IDPersonal  string `json:"idPersonal"`
	Nome        string `json:"nome"`
	Descricao   string `json:"descricao"`
	Tipo        string `json:"tipo"`
	Nivel       string `json:"nivel"`
	Observacoes string `json:"observacoes"`
	Duracao     int    `json:"duracao"`
}

// SearchService keeps the treinos index in sync and answers queries. With no
// Meilisearch client configured, indexing is a no-op and queries fail with a
// service-unavailable error; the rest of the API is unaffected.
type SearchService interface {
	IndexTreino(treino *model.Treino)
	RemoveTreino(id string)
	BuscarTreinos(idPersonal, query string) ([]TreinoDoc, error)
}

type searchService struct {
	client meilisearch.ServiceManager
}

func NewSearchService(client meilisearch.ServiceManager) SearchService {
	s := &searchService{client: client}
	if client != nil {
		s.initIndexes()
	}
	return s
}

func (s *searchService) initIndexes() {
	filterableAttrs := []string{"idPersonal"}
	filterableInterface := make([]any, len(filterableAttrs))
	for i, v := range filterableAttrs {
		filterableInterface[i] = v
	}
	if _, err := s.client.Index("treinos").UpdateFilterableAttributes(&filterableInterface); err != nil {
		log.Printf("Failed to update treinos filterable attributes: %v", err)
	}

	log.Println("Meilisearch treinos index initialized")
}

// IndexTreino upserts the document. Index failures are logged, never fatal:
// search lags behind the store rather than failing the write.
func (s *searchService) IndexTreino(treino *model.Treino) {
	if s.client == nil {
		return
	}

	doc := TreinoDoc{
		ID:          treino.ID,
		IDPersonal:  treino.IDPersonal,
		Nome:        treino.Nome,
		Descricao:   stringOrEmpty(treino.Descricao),
		Tipo:        treino.Tipo,
		Nivel:       treino.Nivel,
		Observacoes: stringOrEmpty(treino.Observacoes),
		Duracao:     treino.Duracao,
	}

	primaryKey := "id"
	if _, err := s.client.Index("treinos").AddDocuments([]TreinoDoc{doc}, &primaryKey); err != nil {
		log.Printf("Failed to index treino %s: %v", treino.ID, err)
	}
}

func (s *searchService) RemoveTreino(id string) {
	if s.client == nil {
		return
	}

	if _, err := s.client.Index("treinos").DeleteDocument(id); err != nil {
		log.Printf("Failed to remove treino %s from index: %v", id, err)
	}
}

func (s *searchService) BuscarTreinos(idPersonal, query string) ([]TreinoDoc, error) {
	if s.client == nil {
		return nil, apperror.ErrIndisponivel
	}

	resp, err := s.client.Index("treinos").Search(query, &meilisearch.SearchRequest{
		Filter: fmt.Sprintf("idPersonal = %q", idPersonal),
		Limit:  50,
	})
	if err != nil {
		return nil, err
	}

	docs := make([]TreinoDoc, 0, len(resp.Hits))
	for _, hit := range resp.Hits {
		raw, err := json.Marshal(hit)
		if err != nil {
			continue
		}
		var doc TreinoDoc
		if err := json.Unmarshal(raw, &doc); err != nil {
			continue
		}
		docs = append(docs, doc)
	}

	return docs, nil
}

func stringOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
