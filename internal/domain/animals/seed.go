package animals

// StarterSet devuelve el dataset fijo del seed (copia nueva en cada llamada).
func StarterSet() []Animal {
	return []Animal{
		{
			Species:        "African Elephant",
			Extinct:        false,
			Location:       "Sub-Saharan Africa",
			LifeExpectancy: 60,
		},
		{
			Species:        "Lion",
			Extinct:        false,
			Location:       "Various regions in Africa",
			LifeExpectancy: 10,
		},
		{
			Species:        "Giraffe",
			Extinct:        false,
			Location:       "Savannas of Africa",
			LifeExpectancy: 25,
		},
		{
			Species:        "Cheetah",
			Extinct:        false,
			Location:       "Various regions in Africa",
			LifeExpectancy: 12,
		},
		{
			Species:        "African Buffalo",
			Extinct:        false,
			Location:       "Sub-Saharan Africa",
			LifeExpectancy: 25,
		},
	}
}
