package store

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"github.com/BruksfildServices01/barbearia-app/internal/models"
	"github.com/BruksfildServices01/barbearia-app/internal/storage"
)

var ErrNotFound = errors.New("record not found")

// Senha administrativa inicial, gravada (com hash) no primeiro boot.
const defaultAdminCode = "1234"

// Store é o dono exclusivo da cópia em memória dos dados. Toda mutação
// segue a mesma sequência: calcula o novo snapshot, atualiza a memória
// e persiste via adaptador, aguardando a escrita antes de retornar.
//
// O mutex serializa as mutações: a plataforma original garantia
// escritor único, aqui quem garante é o lock.
type Store struct {
	mu sync.Mutex
	kv storage.KV

	data     models.Dataset
	config   models.ShopConfig
	gallery  models.Gallery
	codeHash string
}

// Load carrega os quatro blobs. Blob ausente vira default; erro de
// leitura é propagado (o boot deve falhar em vez de mascarar perda de
// dados com defaults).
func Load(ctx context.Context, kv storage.KV) (*Store, error) {
	s := &Store{kv: kv}

	blob, found, err := kv.Read(ctx, storage.KeyDataset)
	if err != nil {
		return nil, err
	}
	if found {
		if err := json.Unmarshal(blob, &s.data); err != nil {
			return nil, err
		}
	} else {
		s.data = models.DefaultDataset()
	}
	if s.data.Services == nil {
		s.data.Services = map[string]models.Service{}
	}

	blob, found, err = kv.Read(ctx, storage.KeyConfig)
	if err != nil {
		return nil, err
	}
	if found {
		if err := json.Unmarshal(blob, &s.config); err != nil {
			return nil, err
		}
	} else {
		s.config = models.DefaultConfig()
	}

	blob, found, err = kv.Read(ctx, storage.KeyGallery)
	if err != nil {
		return nil, err
	}
	if found {
		if err := json.Unmarshal(blob, &s.gallery); err != nil {
			return nil, err
		}
	}

	if err := s.loadAdminCode(ctx); err != nil {
		return nil, err
	}

	return s, nil
}

// ===============================
// Snapshots (cópias)
// ===============================

func (s *Store) Appointments() []models.Appointment {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Appointment, len(s.data.Appointments))
	copy(out, s.data.Appointments)
	return out
}

func (s *Store) Services() map[string]models.Service {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make(map[string]models.Service, len(s.data.Services))
	for id, svc := range s.data.Services {
		out[id] = svc
	}
	return out
}

func (s *Store) Service(id string) (models.Service, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	svc, ok := s.data.Services[id]
	return svc, ok
}

func (s *Store) Config() models.ShopConfig {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.config
}

// ===============================
// Appointments
// ===============================

// AddAppointment anexa o registro. O chamador já validou a
// disponibilidade do horário e atribuiu o ID: o store não repete a
// checagem de colisão.
func (s *Store) AddAppointment(ctx context.Context, ap models.Appointment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data.Appointments = append(s.data.Appointments, ap)
	return s.persistDataset(ctx)
}

// AddAppointmentWith executa build com a lista corrente sob o mesmo
// lock da escrita e anexa o resultado. O chamador valida
// disponibilidade e atribui o ID dentro de build, na mesma seção
// crítica — sem janela entre checagem e gravação.
func (s *Store) AddAppointmentWith(ctx context.Context, build func([]models.Appointment) (models.Appointment, error)) (models.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ap, err := build(s.data.Appointments)
	if err != nil {
		return models.Appointment{}, err
	}

	s.data.Appointments = append(s.data.Appointments, ap)
	return ap, s.persistDataset(ctx)
}

func (s *Store) UpdateAppointment(ctx context.Context, id int, patch AppointmentPatch) (models.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.data.Appointments {
		if s.data.Appointments[i].ID != id {
			continue
		}
		patch.apply(&s.data.Appointments[i])
		ap := s.data.Appointments[i]
		return ap, s.persistDataset(ctx)
	}

	return models.Appointment{}, ErrNotFound
}

// MutateAppointment aplica fn ao registro identificado e persiste.
// Usado pelas ações de domínio (confirmar/cancelar/concluir), cuja
// validação de transição mora em fn.
func (s *Store) MutateAppointment(ctx context.Context, id int, fn func(*models.Appointment) error) (models.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.data.Appointments {
		if s.data.Appointments[i].ID != id {
			continue
		}
		if err := fn(&s.data.Appointments[i]); err != nil {
			return models.Appointment{}, err
		}
		ap := s.data.Appointments[i]
		return ap, s.persistDataset(ctx)
	}

	return models.Appointment{}, ErrNotFound
}

func (s *Store) DeleteAppointment(ctx context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.data.Appointments {
		if s.data.Appointments[i].ID == id {
			s.data.Appointments = append(
				s.data.Appointments[:i],
				s.data.Appointments[i+1:]...,
			)
			return s.persistDataset(ctx)
		}
	}

	return ErrNotFound
}

// ===============================
// Services
// ===============================

func (s *Store) AddService(ctx context.Context, svc models.Service) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data.Services[svc.ID] = svc
	return s.persistDataset(ctx)
}

func (s *Store) UpdateService(ctx context.Context, id string, patch ServicePatch) (models.Service, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	svc, ok := s.data.Services[id]
	if !ok {
		return models.Service{}, ErrNotFound
	}

	patch.apply(&svc)
	s.data.Services[id] = svc
	return svc, s.persistDataset(ctx)
}

func (s *Store) DeleteService(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.data.Services[id]; !ok {
		return ErrNotFound
	}

	delete(s.data.Services, id)
	return s.persistDataset(ctx)
}

// ===============================
// Config
// ===============================

// UpdateConfig substitui a configuração por inteiro.
func (s *Store) UpdateConfig(ctx context.Context, cfg models.ShopConfig) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.config = cfg

	blob, err := json.Marshal(cfg)
	if err != nil {
		return err
	}
	return s.kv.Write(ctx, storage.KeyConfig, blob)
}

// ===============================
// Persistência
// ===============================

func (s *Store) persistDataset(ctx context.Context) error {
	blob, err := json.Marshal(s.data)
	if err != nil {
		return err
	}
	return s.kv.Write(ctx, storage.KeyDataset, blob)
}
