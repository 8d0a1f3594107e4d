package service

import "github.com/camptrail/camptrail/internal/domain"

// Word lists and city data combined into synthetic campground listings
// by the Seeder.

var descriptors = []string{
	"Forest", "Ancient", "Petrified", "Roaring", "Cascade", "Tumbling",
	"Silent", "Redwood", "Bullfrog", "Maple", "Misty", "Elk", "Grizzly",
	"Ocean", "Sky", "Dusty", "Diamond",
}

var places = []string{
	"Flats", "Village", "Canyon", "Pond", "Group Camp", "Horse Camp",
	"Ghost Town", "Camp", "Dispersed Camp", "Backcountry", "River",
	"Creek", "Creekside", "Bay", "Spring", "Bayshore", "Sands",
	"Mule Camp", "Hunting Camp", "Cliffs", "Hollow",
}

type seedCity struct {
	Name      string
	State     string
	Longitude float64
	Latitude  float64
}

var cities = []seedCity{
	{"New York", "New York", -74.0059, 40.7128},
	{"Los Angeles", "California", -118.2437, 34.0522},
	{"Chicago", "Illinois", -87.6298, 41.8781},
	{"Houston", "Texas", -95.3698, 29.7604},
	{"Phoenix", "Arizona", -112.074, 33.4484},
	{"Philadelphia", "Pennsylvania", -75.1652, 39.9526},
	{"San Antonio", "Texas", -98.4936, 29.4241},
	{"San Diego", "California", -117.1611, 32.7157},
	{"Dallas", "Texas", -96.797, 32.7767},
	{"San Jose", "California", -121.8863, 37.3382},
	{"Austin", "Texas", -97.7431, 30.2672},
	{"Jacksonville", "Florida", -81.6557, 30.3322},
	{"Fort Worth", "Texas", -97.3308, 32.7555},
	{"Columbus", "Ohio", -82.9988, 39.9612},
	{"Charlotte", "North Carolina", -80.8431, 35.2271},
	{"Seattle", "Washington", -122.3321, 47.6062},
	{"Denver", "Colorado", -104.9903, 39.7392},
	{"Washington", "District of Columbia", -77.0369, 38.9072},
	{"Boston", "Massachusetts", -71.0589, 42.3601},
	{"Nashville", "Tennessee", -86.7816, 36.1627},
	{"Portland", "Oregon", -122.6765, 45.5231},
	{"Las Vegas", "Nevada", -115.1398, 36.1699},
	{"Albuquerque", "New Mexico", -106.6504, 35.0844},
	{"Tucson", "Arizona", -110.9747, 32.2226},
	{"Sacramento", "California", -121.4944, 38.5816},
	{"Kansas City", "Missouri", -94.5786, 39.0997},
	{"Atlanta", "Georgia", -84.388, 33.749},
	{"Omaha", "Nebraska", -95.9345, 41.2565},
	{"Minneapolis", "Minnesota", -93.265, 44.9778},
	{"Anchorage", "Alaska", -149.9003, 61.2181},
	{"Boise", "Idaho", -116.2023, 43.615},
	{"Helena", "Montana", -112.0391, 46.5891},
	{"Cheyenne", "Wyoming", -104.8202, 41.14},
	{"Salt Lake City", "Utah", -111.891, 40.7608},
	{"Bend", "Oregon", -121.3153, 44.0582},
	{"Asheville", "North Carolina", -82.5515, 35.5951},
	{"Flagstaff", "Arizona", -111.6513, 35.1983},
	{"Missoula", "Montana", -113.994, 46.8721},
	{"Burlington", "Vermont", -73.2121, 44.4759},
	{"Duluth", "Minnesota", -92.1005, 46.7867},
}

var seedImages = [2]domain.Image{
	{
		URL:      "https://res.cloudinary.com/dvu6lzyay/image/upload/v1679666202/YelpCamp/auvl9dr8r5eih2vqzwff.png",
		Filename: "YelpCamp/auvl9dr8r5eih2vqzwff",
	},
	{
		URL:      "https://res.cloudinary.com/dvu6lzyay/image/upload/v1679666205/YelpCamp/av5gxdobywtghfxrfyge.png",
		Filename: "YelpCamp/av5gxdobywtghfxrfyge",
	},
}

const seedDescription = "Lorem ipsum dolor sit amet consectetur adipisicing elit. " +
	"Repellendus asperiores, totam aut inventore quam nihil nam enim vero eum dignissimos " +
	"assumenda praesentium iste eaque, tenetur atque consequuntur. Reprehenderit, dignissimos autem."
