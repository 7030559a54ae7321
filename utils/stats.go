package utils

// Stats tracks population changes across generations
type Stats struct {
	Generation        int
	Population        int
	Births            int
	Deaths            int
	TotalBirths       int
	TotalDeaths       int
	AveragePopulation float64
}

func NewStats() *Stats {
	return &Stats{}
}

// Update records the population of a generation and the transitions that produced it
func (s *Stats) Update(generation, population, births, deaths int) {
	s.Generation = generation
	s.Population = population
	s.Births = births
	s.Deaths = deaths
	s.TotalBirths += births
	s.TotalDeaths += deaths

	// Cumulative mean over generations 0..generation
	s.AveragePopulation += (float64(population) - s.AveragePopulation) / float64(generation+1)
}
