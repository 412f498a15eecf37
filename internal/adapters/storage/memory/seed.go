package memory

import (
	"context"
	"time"

	"entaltek-sabueso/internal/domain/catalog"
	"entaltek-sabueso/internal/domain/checkins"
	"entaltek-sabueso/internal/domain/dogs"
	"entaltek-sabueso/internal/domain/employees"
	"entaltek-sabueso/internal/domain/owners"
)

// Seed carga el dataset de demo (ids fijos o1/d1/e1... para poder probar
// a mano contra la API). Solo para stores de memoria en modo dev.
func Seed(
	ctx context.Context,
	dogRepo dogs.Repository,
	ownerRepo owners.Repository,
	employeeRepo employees.Repository,
	checkInRepo checkins.Repository,
	catalogRepo catalog.Repository,
) error {
	now := time.Now()

	seedOwners := []owners.Owner{
		{ID: "o1", FirstName: "María", LastName: "González", Email: "maria.gonzalez@email.com", Phone: "555-0101", Address: "Av. Reforma 123", CreatedAt: now.AddDate(0, -6, 0)},
		{ID: "o2", FirstName: "Carlos", LastName: "Ramírez", Email: "carlos.ramirez@email.com", Phone: "555-0102", CreatedAt: now.AddDate(0, -4, 0)},
		{ID: "o3", FirstName: "Ana", LastName: "Martínez", Email: "ana.martinez@email.com", Phone: "555-0103", Address: "Calle Juárez 45", CreatedAt: now.AddDate(0, -2, 0)},
	}
	for _, o := range seedOwners {
		if err := ownerRepo.Create(ctx, o); err != nil {
			return err
		}
	}

	seedDogs := []dogs.Dog{
		{
			ID: "d1", Name: "Max", Breed: "Golden Retriever", Age: 3, Weight: 28.5, OwnerID: "o1",
			Status: dogs.StatusCheckedIn,
			Medical: dogs.Medical{
				Vaccines:    dogs.Vaccines{Rabies: true, Bordetella: true, Distemper: true, Parvovirus: true},
				Dewormed:    true,
				Medications: []dogs.Medication{},
			},
			CreatedAt: now.AddDate(0, -6, 0),
		},
		{
			ID: "d2", Name: "Luna", Breed: "Labrador", Age: 2, Weight: 24, OwnerID: "o1",
			Status: dogs.StatusCheckedOut,
			Medical: dogs.Medical{
				Vaccines:    dogs.Vaccines{Rabies: true, Bordetella: true},
				Dewormed:    true,
				Allergies:   "pollo",
				Medications: []dogs.Medication{},
			},
			CreatedAt: now.AddDate(0, -5, 0),
		},
		{
			ID: "d3", Name: "Rocky", Breed: "Bulldog Francés", Age: 4, Weight: 12.3, OwnerID: "o2",
			Status: dogs.StatusCheckedOut,
			Medical: dogs.Medical{
				Vaccines: dogs.Vaccines{Rabies: true, Distemper: true},
				Medications: []dogs.Medication{
					{ID: "m1", Name: "Apoquel", Dosage: "5mg", Frequency: "cada 12h"},
				},
				Limitations: "no ejercicio intenso por calor",
			},
			CreatedAt: now.AddDate(0, -4, 0),
		},
		{
			ID: "d4", Name: "Coco", Breed: "Poodle", Age: 1, Weight: 6.8, OwnerID: "o3",
			Status: dogs.StatusReserved,
			Medical: dogs.Medical{
				Vaccines:    dogs.Vaccines{Rabies: true},
				Medications: []dogs.Medication{},
			},
			CreatedAt: now.AddDate(0, -1, 0),
		},
	}
	for _, d := range seedDogs {
		if err := dogRepo.Create(ctx, d); err != nil {
			return err
		}
	}

	seedEmployees := []employees.Employee{
		{
			ID: "e1", FirstName: "Pedro", LastName: "Sánchez", Email: "pedro@entaltek.com", Phone: "555-0201",
			Role: employees.RoleCaretaker, Status: employees.StatusActive,
			HireDate:       now.AddDate(-1, 0, 0),
			AssignedDogIDs: []string{"d1", "d2"},
			CreatedAt:      now.AddDate(-1, 0, 0),
		},
		{
			ID: "e2", FirstName: "Laura", LastName: "Torres", Email: "laura@entaltek.com",
			Role: employees.RoleAdmin, Status: employees.StatusActive,
			HireDate:       now.AddDate(-2, 0, 0),
			AssignedDogIDs: []string{},
			CreatedAt:      now.AddDate(-2, 0, 0),
		},
	}
	for _, e := range seedEmployees {
		if err := employeeRepo.Create(ctx, e); err != nil {
			return err
		}
	}

	yesterday := now.AddDate(0, 0, -1)
	yesterdayOut := yesterday.Add(8 * time.Hour)
	seedCheckIns := []checkins.CheckIn{
		{
			ID: "c1", DogID: "d2", DogName: "Luna", OwnerName: "María González",
			ServiceType: checkins.ServiceDaycare,
			CheckInTime: yesterday, CheckOutTime: &yesterdayOut,
			Status: checkins.StatusCompleted, CaretakerID: "e1",
		},
		{
			ID: "c2", DogID: "d1", DogName: "Max", OwnerName: "María González",
			ServiceType: checkins.ServiceHotel,
			CheckInTime: now.Add(-3 * time.Hour),
			Notes:       "trae su manta",
			Status:      checkins.StatusActive, CaretakerID: "e1",
		},
	}
	for _, c := range seedCheckIns {
		if err := checkInRepo.Create(ctx, c); err != nil {
			return err
		}
	}

	seedCatalog := []catalog.Service{
		{ID: "s1", Name: "Guardería día completo", Description: "Cuidado y juego durante el día", Price: 350, Type: catalog.TypeDaycare, Duration: "día completo", CreatedAt: now.AddDate(-1, 0, 0)},
		{ID: "s2", Name: "Hotel por noche", Description: "Estancia nocturna con paseo incluido", Price: 550, Type: catalog.TypeHotel, Duration: "por noche", CreatedAt: now.AddDate(-1, 0, 0)},
		{ID: "s3", Name: "Baño y corte", Description: "Estética completa", Price: 420, Type: catalog.TypeGrooming, CreatedAt: now.AddDate(0, -8, 0)},
		{ID: "s4", Name: "Entrenamiento básico", Description: "Obediencia básica, paquete 4 sesiones", Price: 1200, Type: catalog.TypeTraining, CreatedAt: now.AddDate(0, -3, 0)},
	}
	for _, s := range seedCatalog {
		if err := catalogRepo.Create(ctx, s); err != nil {
			return err
		}
	}

	return nil
}
