package i18n

// Keys are the Spanish source strings shown by the app.
var tables = map[string]map[string]string{
	"en": {
		// dashboard
		"Huella Total":                  "Total Footprint",
		"Tus Dispositivos":              "Your Devices",
		"No tienes dispositivos":        "You have no devices",
		"Agregar Dispositivo":           "Add Device",
		"Activo":                        "On",
		"Inactivo":                      "Off",
		"Favorito":                      "Favorite",
		"Quitar de favoritos":           "Remove from favorites",
		"Eliminar":                      "Delete",
		"Dispositivo eliminado":         "Device deleted",
		"No hay dispositivo registrado": "No device registered",

		// device form
		"Nombre":             "Name",
		"Categoria":          "Category",
		"Watts":              "Watts",
		"Color":              "Color",
		"Campos incompletos": "Incomplete fields",
		"Por favor completa todos los campos obligatorios": "Please fill in all required fields",
		"Los watts deben ser un numero positivo":           "Watts must be a positive number",
		"Color invalido":                                   "Invalid color",

		// teams
		"Tus Equipos":       "Your Teams",
		"No tienes equipos": "You have no teams",
		"Crear Equipo":      "Create Team",
		"Unirse a Equipo":   "Join Team",
		"Nombre del equipo": "Team name",
		"Codigo del equipo": "Team code",
		"El nombre del equipo debe tener al menos 3 caracteres": "Team name must be at least 3 characters",
		"Por favor, ingresa el nombre y el código del equipo":   "Please enter the team name and code",
		"El código del equipo debe tener 6 caracteres":          "Team code must be 6 characters",
		"Dispositivos":    "Devices",
		"Miembros":        "Members",
		"Estadísticas":    "Statistics",
		"Administrador":   "Administrator",
		"Asistente":       "Assistant",
		"Miembro":         "Member",
		"Ascender":        "Promote",
		"Degradar":        "Demote",
		"Expulsar":        "Remove",
		"Eliminar equipo": "Delete team",

		// statistics
		"Dispositivo de Mayor Impacto": "Highest Impact Device",
		"Mayor consumo energético":     "Highest energy consumption",
		"Horas":                        "Hours",
		"Equivalente en Árboles":       "Tree Equivalent",

		// ticket
		"Reporte de Huella de Carbono": "Carbon Footprint Report",
		"Huella de Carbono":            "Carbon Footprint",
		"CO₂ equivalente":              "CO₂ equivalent",
		"Equivalente en Ahorros":       "Savings Equivalent",
		"Equivalente a":                "Equivalent to",
		"árboles plantados":            "trees planted",
		"Fecha y Hora":                 "Date and Time",
		"Usuario":                      "User",

		// auth
		"All fields must be filled.":             "All fields must be filled.",
		"Please enter a valid email address":     "Please enter a valid email address",
		"Password must be at least 6 characters": "Password must be at least 6 characters",
		"Passwords do not match":                 "Passwords do not match",
		"Logged in successfully.":                "Logged in successfully.",
		"User created successfully.":             "User created successfully.",
		"Password reset email sent.":             "Password reset email sent.",
		"Invalid email or password":              "Invalid email or password",
		"Email already in use":                   "Email already in use",

		// errors
		"Error de conexión": "Connection error",
		"Error":             "Error",
	},
	"es": {
		"Huella Total":                  "Huella Total",
		"Tus Dispositivos":              "Tus Dispositivos",
		"No tienes dispositivos":        "No tienes dispositivos",
		"Agregar Dispositivo":           "Agregar Dispositivo",
		"Activo":                        "Activo",
		"Inactivo":                      "Inactivo",
		"Favorito":                      "Favorito",
		"Quitar de favoritos":           "Quitar de favoritos",
		"Eliminar":                      "Eliminar",
		"Dispositivo eliminado":         "Dispositivo eliminado",
		"No hay dispositivo registrado": "No hay dispositivo registrado",

		"Nombre":             "Nombre",
		"Categoria":          "Categoría",
		"Watts":              "Watts",
		"Color":              "Color",
		"Campos incompletos": "Campos incompletos",
		"Por favor completa todos los campos obligatorios": "Por favor completa todos los campos obligatorios",
		"Los watts deben ser un numero positivo":           "Los watts deben ser un número positivo",
		"Color invalido":                                   "Color inválido",

		"Tus Equipos":       "Tus Equipos",
		"No tienes equipos": "No tienes equipos",
		"Crear Equipo":      "Crear Equipo",
		"Unirse a Equipo":   "Unirse a Equipo",
		"Nombre del equipo": "Nombre del equipo",
		"Codigo del equipo": "Código del equipo",
		"El nombre del equipo debe tener al menos 3 caracteres": "El nombre del equipo debe tener al menos 3 caracteres",
		"Por favor, ingresa el nombre y el código del equipo":   "Por favor, ingresa el nombre y el código del equipo",
		"El código del equipo debe tener 6 caracteres":          "El código del equipo debe tener 6 caracteres",
		"Dispositivos":    "Dispositivos",
		"Miembros":        "Miembros",
		"Estadísticas":    "Estadísticas",
		"Administrador":   "Administrador",
		"Asistente":       "Asistente",
		"Miembro":         "Miembro",
		"Ascender":        "Ascender",
		"Degradar":        "Degradar",
		"Expulsar":        "Expulsar",
		"Eliminar equipo": "Eliminar equipo",

		"Dispositivo de Mayor Impacto": "Dispositivo de Mayor Impacto",
		"Mayor consumo energético":     "Mayor consumo energético",
		"Horas":                        "Horas",
		"Equivalente en Árboles":       "Equivalente en Árboles",

		"Reporte de Huella de Carbono": "Reporte de Huella de Carbono",
		"Huella de Carbono":            "Huella de Carbono",
		"CO₂ equivalente":              "CO₂ equivalente",
		"Equivalente en Ahorros":       "Equivalente en Ahorros",
		"Equivalente a":                "Equivalente a",
		"árboles plantados":            "árboles plantados",
		"Fecha y Hora":                 "Fecha y Hora",
		"Usuario":                      "Usuario",

		"All fields must be filled.":             "Todos los campos deben estar llenos.",
		"Please enter a valid email address":     "Por favor ingresa un correo válido",
		"Password must be at least 6 characters": "La contraseña debe tener al menos 6 caracteres",
		"Passwords do not match":                 "Las contraseñas no coinciden",
		"Logged in successfully.":                "Sesión iniciada correctamente.",
		"User created successfully.":             "Usuario creado correctamente.",
		"Password reset email sent.":             "Correo de recuperación enviado.",
		"Invalid email or password":              "Correo o contraseña inválidos",
		"Email already in use":                   "El correo ya está en uso",

		"Error de conexión": "Error de conexión",
		"Error":             "Error",
	},
}
